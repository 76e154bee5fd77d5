// Package handler contains the HTTP handlers.  Handlers bind and
// validate request bodies, call into the service layer and translate
// domain errors to status codes: not-found errors map to 404, every
// other domain failure maps to 400, anything unexpected to 500.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/kleberlz17/locadora-api/internal/repository"
	"github.com/kleberlz17/locadora-api/internal/service"
)

// Validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request structs.
type Validator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator with the default tag rules.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.  Constraint violations surface as
// 400 responses.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// writeError maps a domain error to its HTTP response.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrCustomerNotFound),
		errors.Is(err, repository.ErrMovieNotFound),
		errors.Is(err, repository.ErrRentalNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidRental),
		errors.Is(err, service.ErrDuplicateRental),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrDuplicateField),
		errors.Is(err, service.ErrDuplicateTitle),
		errors.Is(err, service.ErrInvalidReleaseDate):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
