// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kleberlz17/locadora-api/internal/handler"
)

// RegisterRoutes wires the health check and the customer, movie and
// rental endpoints onto the provided Echo instance.
func RegisterRoutes(e *echo.Echo, customers *handler.CustomerHandler, movies *handler.MovieHandler, rentals *handler.RentalHandler) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)

	c := e.Group("/customers")
	c.POST("", customers.Create)
	c.GET("/:id", customers.GetByID)
	c.GET("/name/:name", customers.SearchByName)
	c.GET("/nationalId/:nationalId", customers.GetByNationalID)
	c.PUT("/:id", customers.Update)
	c.PUT("/:id/phone", customers.SetPhone)
	c.PUT("/:id/email", customers.SetEmail)
	c.PUT("/:id/address", customers.SetAddress)
	c.DELETE("/:id", customers.Delete)

	m := e.Group("/movies")
	m.POST("", movies.Create)
	m.GET("/:id", movies.GetByID)
	m.GET("/title/:title", movies.SearchByTitle)
	m.GET("/releaseDate/:date", movies.ListByReleaseDate)
	m.GET("/director/:director", movies.SearchByDirector)
	m.GET("/genre/:genre", movies.SearchByGenre)
	m.PUT("/:id/stock", movies.SetStock)
	m.PUT("/:id/releaseDate", movies.SetReleaseDate)
	m.PUT("/:id/title", movies.SetTitle)
	m.DELETE("/:id", movies.Delete)

	r := e.Group("/rentals")
	r.POST("", rentals.Create)
	// Static segment next to the :id routes; Echo resolves static paths
	// before parameters.
	r.POST("/rent", rentals.Rent)
	r.GET("/:id/byCustomer", rentals.ListByCustomer)
	r.GET("/:id/history", rentals.ListByMovie)
	r.PUT("/:id/renew", rentals.Renew)
	r.POST("/:id/lateFee", rentals.LateFee)
	r.DELETE("/:id", rentals.Delete)
}
