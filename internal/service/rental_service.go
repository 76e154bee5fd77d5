package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/kleberlz17/locadora-api/internal/model"
	"github.com/kleberlz17/locadora-api/internal/queue"
	"github.com/kleberlz17/locadora-api/internal/repository"
)

// lateFeePerDay is the fixed charge for each whole day past the due
// date while the rental is open.
var lateFeePerDay = decimal.NewFromFloat(7.00)

// EventPublisher is the sink for rental domain events.  Publishing is
// best effort: the workflow logs failures and carries on.
type EventPublisher interface {
	PublishRentalCreated(ctx context.Context, event queue.RentalCreatedEvent) error
}

// RentalService orchestrates the rental workflow: validating a
// candidate rental against stock and schedule constraints, decrementing
// inventory and recording the rental in one transaction, renewing due
// dates and computing late fees.
type RentalService struct {
	customers *repository.CustomerRepo
	movies    *repository.MovieRepo
	rentals   *repository.RentalRepo
	validator *RentalValidator
	publisher EventPublisher
	log       zerolog.Logger
}

// NewRentalService constructs a RentalService.  The publisher may be
// nil, in which case no events are emitted.
func NewRentalService(customers *repository.CustomerRepo, movies *repository.MovieRepo, rentals *repository.RentalRepo, publisher EventPublisher, log zerolog.Logger) *RentalService {
	if customers == nil || movies == nil || rentals == nil {
		panic("nil repository passed to NewRentalService")
	}
	return &RentalService{
		customers: customers,
		movies:    movies,
		rentals:   rentals,
		validator: NewRentalValidator(rentals),
		publisher: publisher,
		log:       log,
	}
}

// Create persists a fully specified rental.  It resolves the customer
// and movie, runs the composite validation against the candidate, then
// decrements the movie stock and inserts the rental inside a single
// transaction.  Either both writes commit or neither is visible.
func (s *RentalService) Create(ctx context.Context, customerID, movieID int64, rentalDate, dueDate model.Date, quantity int64, returned bool) (*model.Rental, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	rental := &model.Rental{
		CustomerID: customer.ID,
		MovieID:    movie.ID,
		RentalDate: rentalDate,
		DueDate:    dueDate,
		Returned:   returned,
		Quantity:   quantity,
	}
	if err := s.validator.ValidateAll(ctx, rental, movie); err != nil {
		return nil, err
	}
	if err := s.saveWithStockDecrement(ctx, rental); err != nil {
		return nil, err
	}
	s.publishCreated(ctx, rental, customer, movie)
	return rental, nil
}

// Rent is the convenience creator: rental date is today and the rental
// starts open.  A non-positive quantity fails with ErrInsufficientStock,
// matching the behavior callers of the rent endpoint rely on.
func (s *RentalService) Rent(ctx context.Context, customerID, movieID, quantity int64, dueDate model.Date) (*model.Rental, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInsufficientStock)
	}

	rental := &model.Rental{
		CustomerID: customer.ID,
		MovieID:    movie.ID,
		RentalDate: model.Today(),
		DueDate:    dueDate,
		Returned:   false,
		Quantity:   quantity,
	}
	if err := s.validator.ValidateAll(ctx, rental, movie); err != nil {
		return nil, err
	}
	if err := s.saveWithStockDecrement(ctx, rental); err != nil {
		return nil, err
	}
	s.publishCreated(ctx, rental, customer, movie)
	return rental, nil
}

// saveWithStockDecrement performs the conditional stock decrement and
// the rental insert in one transaction.  The decrement carries its own
// stock >= quantity guard, so a concurrent rental that took the last
// unit between validation and commit surfaces as ErrInsufficientStock
// rather than negative stock.
func (s *RentalService) saveWithStockDecrement(ctx context.Context, rental *model.Rental) error {
	tx, err := s.rentals.DB().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	ok, err := s.movies.DecrementStockTx(ctx, tx, rental.MovieID, rental.Quantity)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: movie %d has fewer than %d units", ErrInsufficientStock, rental.MovieID, rental.Quantity)
	}
	if err := s.rentals.CreateTx(ctx, tx, rental); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *RentalService) publishCreated(ctx context.Context, rental *model.Rental, customer *model.Customer, movie *model.Movie) {
	if s.publisher == nil {
		return
	}
	event := queue.RentalCreatedEvent{
		EventID:      uuid.NewString(),
		RentalID:     rental.ID,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		MovieID:      movie.ID,
		MovieTitle:   movie.Title,
		Quantity:     rental.Quantity,
		RentalDate:   rental.RentalDate.String(),
		DueDate:      rental.DueDate.String(),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishRentalCreated(ctx, event); err != nil {
		s.log.Warn().Err(err).Int64("rental_id", rental.ID).Msg("rental event publish failed")
	}
}

// GetByID returns the rental or repository.ErrRentalNotFound.
func (s *RentalService) GetByID(ctx context.Context, id int64) (*model.Rental, error) {
	return s.rentals.GetByID(ctx, id)
}

// ListByCustomer returns the customer's rentals in insertion order.
func (s *RentalService) ListByCustomer(ctx context.Context, customerID int64) ([]model.Rental, error) {
	return s.rentals.ListByCustomer(ctx, customerID)
}

// ListByMovie returns the movie's rental history in insertion order.
func (s *RentalService) ListByMovie(ctx context.Context, movieID int64) ([]model.Rental, error) {
	return s.rentals.ListByMovie(ctx, movieID)
}

// Renew moves the rental's due date.  The new date must be set and must
// not be before today.
func (s *RentalService) Renew(ctx context.Context, id int64, newDueDate model.Date) (*model.Rental, error) {
	if newDueDate.IsZero() {
		return nil, fmt.Errorf("%w: new due date must not be null", ErrInvalidRental)
	}
	if err := s.validator.ValidateDueDate(newDueDate); err != nil {
		return nil, err
	}
	if _, err := s.rentals.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.rentals.UpdateDueDate(ctx, id, newDueDate)
}

// LateFee computes the penalty owed on a rental: zero when returned or
// not yet overdue, otherwise 7.00 per whole day past the due date.  The
// call has no side effects, so repeated calls without other mutation
// yield the same value.
func (s *RentalService) LateFee(ctx context.Context, id int64) (decimal.Decimal, error) {
	rental, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	if rental.Returned {
		return decimal.Zero, nil
	}
	today := model.Today()
	if !rental.DueDate.Before(today.Time) {
		return decimal.Zero, nil
	}
	daysLate := today.DaysSince(rental.DueDate)
	return lateFeePerDay.Mul(decimal.NewFromInt(int64(daysLate))), nil
}

// Delete removes the rental record.  Movie stock is intentionally left
// untouched; deleting a rental is an administrative correction, not a
// return.
func (s *RentalService) Delete(ctx context.Context, id int64) error {
	if _, err := s.rentals.GetByID(ctx, id); err != nil {
		return err
	}
	return s.rentals.Delete(ctx, id)
}
