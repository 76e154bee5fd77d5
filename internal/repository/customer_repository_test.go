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

func newCustomerRepoTest(t *testing.T) (*CustomerRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCustomerRepo(db), mock
}

func customerRows(names ...string) *sqlmock.Rows {
	now := time.Now()
	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "birth_date", "national_id", "phone", "email", "address", "created_at", "updated_at"})
	for i, name := range names {
		rows.AddRow(int64(i+1), name, birth, "12345678901", "11999990000", "ana@example.com", "Rua das Flores 10", now, now)
	}
	return rows
}

func TestCustomerSearchByNameIgnoresCase(t *testing.T) {
	repo, mock := newCustomerRepoTest(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + customerColumns + ` FROM customers WHERE LOWER(name) LIKE LOWER(?) ORDER BY id`)).
		WithArgs("%ana%").
		WillReturnRows(customerRows("Ana", "Mariana"))

	customers, err := repo.SearchByName(context.Background(), "ana")
	require.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerGetByNationalID(t *testing.T) {
	repo, mock := newCustomerRepoTest(t)
	q := regexp.QuoteMeta(`SELECT ` + customerColumns + ` FROM customers WHERE LOWER(national_id) = LOWER(?)`)

	mock.ExpectQuery(q).WithArgs("12345678901").WillReturnRows(customerRows("Ana"))
	c, err := repo.GetByNationalID(context.Background(), "12345678901")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	assert.Equal(t, "1990-05-01", c.BirthDate.String())

	mock.ExpectQuery(q).WithArgs("00000000000").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByNationalID(context.Background(), "00000000000")
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerUpdateMissingRow(t *testing.T) {
	repo, mock := newCustomerRepoTest(t)

	// RowsAffected of zero alone does not prove absence; the repo checks
	// existence explicitly before reporting not-found.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE customers SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM customers WHERE id = ?`)).WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	c := &model.Customer{ID: 99, Name: "Ana", NationalID: "12345678901", Phone: "11999990000", Email: "ana@example.com", Address: "Rua das Flores 10"}
	require.ErrorIs(t, repo.Update(context.Background(), c), ErrCustomerNotFound)
}
