package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleberlz17/locadora-api/internal/model"
)

func newRentalRepoTest(t *testing.T) (*RentalRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRentalRepo(db), mock
}

func rentalRows(ids ...int64) *sqlmock.Rows {
	now := time.Now()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "customer_id", "movie_id", "rental_date", "due_date", "returned", "quantity", "created_at"})
	for _, id := range ids {
		rows.AddRow(id, 1, 2, day, day.AddDate(0, 0, 7), false, 1, now)
	}
	return rows
}

func TestRentalCreateTxPopulatesRow(t *testing.T) {
	repo, mock := newRentalRepoTest(t)
	day := model.NewDate(2026, time.August, 20)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO rentals (customer_id, movie_id, rental_date, due_date, returned, quantity) VALUES (?, ?, ?, ?, ?, ?)`)).
		WithArgs(int64(1), int64(2), day, day.AddDays(7), false, int64(1)).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + rentalColumns + ` FROM rentals WHERE id = ?`)).
		WithArgs(int64(42)).
		WillReturnRows(rentalRows(42))

	tx, err := repo.DB().Begin()
	require.NoError(t, err)

	rental := &model.Rental{CustomerID: 1, MovieID: 2, RentalDate: day, DueDate: day.AddDays(7), Quantity: 1}
	require.NoError(t, repo.CreateTx(context.Background(), tx, rental))
	assert.Equal(t, int64(42), rental.ID)
	assert.Equal(t, "2026-08-20", rental.RentalDate.String())
	assert.False(t, rental.CreatedAt.IsZero())
}

func TestRentalFindOpen(t *testing.T) {
	repo, mock := newRentalRepoTest(t)
	day := model.NewDate(2026, time.August, 20)
	q := regexp.QuoteMeta(`SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = ? AND movie_id = ? AND rental_date = ? AND returned = FALSE LIMIT 1`)

	mock.ExpectQuery(q).WithArgs(int64(1), int64(2), day).WillReturnRows(rentalRows(7))
	rental, err := repo.FindOpen(context.Background(), 1, 2, day)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rental.ID)

	mock.ExpectQuery(q).WithArgs(int64(1), int64(3), day).WillReturnError(sql.ErrNoRows)
	_, err = repo.FindOpen(context.Background(), 1, 3, day)
	require.ErrorIs(t, err, ErrRentalNotFound)
}

func TestRentalListByCustomerEmpty(t *testing.T) {
	repo, mock := newRentalRepoTest(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = ? ORDER BY id`)).
		WithArgs(int64(1)).
		WillReturnRows(rentalRows())

	rentals, err := repo.ListByCustomer(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, rentals)
	assert.Empty(t, rentals)
}

func TestRentalDeleteNotFound(t *testing.T) {
	repo, mock := newRentalRepoTest(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM rentals WHERE id = ?`)).WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), 99), ErrRentalNotFound)
}
