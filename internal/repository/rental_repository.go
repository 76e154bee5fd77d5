package repository

import (
	"context"
	"database/sql"

	"github.com/kleberlz17/locadora-api/internal/model"
)

// RentalRepo provides persistence for rentals.  Rentals reference
// customers and movies by id; listing by either side goes through the
// foreign-key indexes.  Creation happens inside the caller's
// transaction so the stock decrement and the rental insert commit as
// one unit.
type RentalRepo struct {
	db *sql.DB
}

// NewRentalRepo returns a RentalRepo bound to the given database.
func NewRentalRepo(db *sql.DB) *RentalRepo { return &RentalRepo{db: db} }

// DB exposes the underlying sql.DB for transaction control.
func (r *RentalRepo) DB() *sql.DB { return r.db }

const rentalColumns = `id, customer_id, movie_id, rental_date, due_date, returned, quantity, created_at`

func scanRental(row interface{ Scan(...any) error }, re *model.Rental) error {
	return row.Scan(&re.ID, &re.CustomerID, &re.MovieID, &re.RentalDate, &re.DueDate, &re.Returned, &re.Quantity, &re.CreatedAt)
}

func (r *RentalRepo) queryRentals(ctx context.Context, q string, args ...any) ([]model.Rental, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rentals := make([]model.Rental, 0)
	for rows.Next() {
		var re model.Rental
		if err := scanRental(rows, &re); err != nil {
			return nil, err
		}
		rentals = append(rentals, re)
	}
	return rentals, rows.Err()
}

// CreateTx inserts a new rental within the scope of an existing
// transaction and populates the generated id on the given struct.
// The caller must commit or roll back the transaction.
func (r *RentalRepo) CreateTx(ctx context.Context, tx *sql.Tx, re *model.Rental) error {
	const q = `INSERT INTO rentals (customer_id, movie_id, rental_date, due_date, returned, quantity) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, re.CustomerID, re.MovieID, re.RentalDate, re.DueDate, re.Returned, re.Quantity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	re.ID = id
	const sel = `SELECT ` + rentalColumns + ` FROM rentals WHERE id = ?`
	return scanRental(tx.QueryRowContext(ctx, sel, re.ID), re)
}

// GetByID returns the rental with the given id, or ErrRentalNotFound.
func (r *RentalRepo) GetByID(ctx context.Context, id int64) (*model.Rental, error) {
	const q = `SELECT ` + rentalColumns + ` FROM rentals WHERE id = ?`
	var re model.Rental
	if err := scanRental(r.db.QueryRowContext(ctx, q, id), &re); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return &re, nil
}

// ListByCustomer returns all rentals of a customer in insertion order.
func (r *RentalRepo) ListByCustomer(ctx context.Context, customerID int64) ([]model.Rental, error) {
	const q = `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = ? ORDER BY id`
	return r.queryRentals(ctx, q, customerID)
}

// ListByMovie returns all rentals of a movie in insertion order.
func (r *RentalRepo) ListByMovie(ctx context.Context, movieID int64) ([]model.Rental, error) {
	const q = `SELECT ` + rentalColumns + ` FROM rentals WHERE movie_id = ? ORDER BY id`
	return r.queryRentals(ctx, q, movieID)
}

// ListByRentalDate returns all rentals started on the given day.
func (r *RentalRepo) ListByRentalDate(ctx context.Context, date model.Date) ([]model.Rental, error) {
	const q = `SELECT ` + rentalColumns + ` FROM rentals WHERE rental_date = ? ORDER BY id`
	return r.queryRentals(ctx, q, date)
}

// ListByDueDate returns all rentals due on the given day.
func (r *RentalRepo) ListByDueDate(ctx context.Context, date model.Date) ([]model.Rental, error) {
	const q = `SELECT ` + rentalColumns + ` FROM rentals WHERE due_date = ? ORDER BY id`
	return r.queryRentals(ctx, q, date)
}

// FindOpen returns the open (returned=false) rental matching the
// customer, movie and rental date, or ErrRentalNotFound.  Used by the
// duplicate-open-rental validator.
func (r *RentalRepo) FindOpen(ctx context.Context, customerID, movieID int64, rentalDate model.Date) (*model.Rental, error) {
	const q = `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = ? AND movie_id = ? AND rental_date = ? AND returned = FALSE LIMIT 1`
	var re model.Rental
	if err := scanRental(r.db.QueryRowContext(ctx, q, customerID, movieID, rentalDate), &re); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return &re, nil
}

// UpdateDueDate persists a new due date for the rental.  Returns
// ErrRentalNotFound when the id does not exist.
func (r *RentalRepo) UpdateDueDate(ctx context.Context, id int64, dueDate model.Date) (*model.Rental, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE rentals SET due_date = ? WHERE id = ?`, dueDate, id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Same date written twice also affects zero rows; resolve via lookup.
		return r.GetByID(ctx, id)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the rental with the given id.  Returns
// ErrRentalNotFound when no row was deleted.  Movie stock is not
// restored here; deletion only forgets the record.
func (r *RentalRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRentalNotFound
	}
	return nil
}
