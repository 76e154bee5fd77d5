package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kleberlz17/locadora-api/internal/model"
	"github.com/kleberlz17/locadora-api/internal/service"
)

// RentalHandler exposes the rental workflow endpoints.
type RentalHandler struct {
	Rentals *service.RentalService
}

// NewRentalHandler constructs a RentalHandler.
func NewRentalHandler(rentals *service.RentalService) *RentalHandler {
	if rentals == nil {
		panic("nil service passed to NewRentalHandler")
	}
	return &RentalHandler{Rentals: rentals}
}

type createRentalRequest struct {
	CustomerID int64      `json:"customer_id" validate:"required,gte=1"`
	MovieID    int64      `json:"movie_id" validate:"required,gte=1"`
	RentalDate model.Date `json:"rental_date"`
	DueDate    model.Date `json:"due_date"`
	Quantity   int64      `json:"quantity" validate:"required,gte=1"`
	Returned   bool       `json:"returned"`
}

// Create handles POST /rentals.  All fields are required; the rental
// date and due date must be present in YYYY-MM-DD form.
func (h *RentalHandler) Create(c echo.Context) error {
	var req createRentalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.RentalDate.IsZero() || req.DueDate.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rental_date and due_date are required"})
	}
	rental, err := h.Rentals.Create(c.Request().Context(), req.CustomerID, req.MovieID, req.RentalDate, req.DueDate, req.Quantity, req.Returned)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": rental.ID})
}

type rentRequest struct {
	CustomerID int64      `json:"customer_id" validate:"required,gte=1"`
	MovieID    int64      `json:"movie_id" validate:"required,gte=1"`
	Quantity   int64      `json:"quantity"`
	DueDate    model.Date `json:"due_date"`
}

// Rent handles POST /rentals/rent, the convenience creator that rents
// a movie starting today.  Quantity is deliberately not range-checked
// here: a non-positive quantity is answered by the workflow as an
// insufficient-stock failure.
func (h *RentalHandler) Rent(c echo.Context) error {
	var req rentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.DueDate.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "due_date is required"})
	}
	rental, err := h.Rentals.Rent(c.Request().Context(), req.CustomerID, req.MovieID, req.Quantity, req.DueDate)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rental)
}

// ListByCustomer handles GET /rentals/:id/byCustomer, where the id is
// the customer's.  The list may be empty.
func (h *RentalHandler) ListByCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	rentals, err := h.Rentals.ListByCustomer(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rentals)
}

// ListByMovie handles GET /rentals/:id/history, where the id is the
// movie's.  The list may be empty.
func (h *RentalHandler) ListByMovie(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	rentals, err := h.Rentals.ListByMovie(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rentals)
}

// Renew handles PUT /rentals/:id/renew.
func (h *RentalHandler) Renew(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		DueDate model.Date `json:"due_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rental, err := h.Rentals.Renew(c.Request().Context(), id, body.DueDate)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rental)
}

// LateFee handles POST /rentals/:id/lateFee and returns the fee as a
// plain JSON number.
func (h *RentalHandler) LateFee(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	fee, err := h.Rentals.LateFee(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, fee.InexactFloat64())
}

// Delete handles DELETE /rentals/:id.
func (h *RentalHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Rentals.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
