package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kleberlz17/locadora-api/internal/model"
	"github.com/kleberlz17/locadora-api/internal/repository"
)

// RentalValidator is the stateless predicate set for rentals.  The
// duplicate check is parameterized by the rental repository; everything
// else is pure.  ValidateAll runs the rules in a fixed order and stops
// at the first failure.
type RentalValidator struct {
	rentals *repository.RentalRepo
}

// NewRentalValidator returns a RentalValidator backed by the given repo.
func NewRentalValidator(rentals *repository.RentalRepo) *RentalValidator {
	return &RentalValidator{rentals: rentals}
}

// ValidateRentalDate fails when the rental date is strictly in the future.
func (v *RentalValidator) ValidateRentalDate(rentalDate model.Date) error {
	if rentalDate.After(model.Today().Time) {
		return fmt.Errorf("%w: rental date is in the future", ErrInvalidRental)
	}
	return nil
}

// ValidateDueDate fails when the due date is strictly in the past.
func (v *RentalValidator) ValidateDueDate(dueDate model.Date) error {
	if dueDate.Before(model.Today().Time) {
		return fmt.Errorf("%w: due date is in the past", ErrInvalidRental)
	}
	return nil
}

// ValidateQuantity fails when the quantity is negative.
func (v *RentalValidator) ValidateQuantity(quantity int64) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidRental)
	}
	return nil
}

// ValidateNoDuplicateOpen fails when another open rental exists for the
// same customer, movie and rental date.
func (v *RentalValidator) ValidateNoDuplicateOpen(ctx context.Context, customerID, movieID int64, rentalDate model.Date) error {
	_, err := v.rentals.FindOpen(ctx, customerID, movieID, rentalDate)
	if err == nil {
		return fmt.Errorf("%w: customer %d already has movie %d rented on %s", ErrDuplicateRental, customerID, movieID, rentalDate)
	}
	if errors.Is(err, repository.ErrRentalNotFound) {
		return nil
	}
	return err
}

// ValidateStock fails when the movie is absent or holds fewer units
// than requested.  The authoritative check is the conditional decrement
// inside the rental transaction; this pre-check keeps the error ordering
// of the composite validator.
func (v *RentalValidator) ValidateStock(movie *model.Movie, quantity int64) error {
	if movie == nil || movie.Stock < quantity {
		return fmt.Errorf("%w: movie has no stock for quantity %d", ErrInsufficientStock, quantity)
	}
	return nil
}

// ValidateAll runs the full rule set against a candidate rental:
// rental date, due date, quantity, duplicate open rental, stock.
// Fail-fast, no error aggregation.
func (v *RentalValidator) ValidateAll(ctx context.Context, rental *model.Rental, movie *model.Movie) error {
	if err := v.ValidateRentalDate(rental.RentalDate); err != nil {
		return err
	}
	if err := v.ValidateDueDate(rental.DueDate); err != nil {
		return err
	}
	if err := v.ValidateQuantity(rental.Quantity); err != nil {
		return err
	}
	if err := v.ValidateNoDuplicateOpen(ctx, rental.CustomerID, rental.MovieID, rental.RentalDate); err != nil {
		return err
	}
	return v.ValidateStock(movie, rental.Quantity)
}
