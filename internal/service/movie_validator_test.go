package service

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
	"github.com/kleberlz17/locadora-api/internal/repository"
)

func TestValidateReleaseDateMonthGranularity(t *testing.T) {
	v := NewMovieValidator(nil)
	today := model.Today()

	// Any day in the current month passes, even one after today.
	endOfMonth := model.NewDate(today.Year(), today.Month(), 28)
	assert.NoError(t, v.ValidateReleaseDate(endOfMonth))
	assert.NoError(t, v.ValidateReleaseDate(model.NewDate(today.Year(), today.Month(), 1)))
	assert.NoError(t, v.ValidateReleaseDate(model.NewDate(1985, time.July, 3)))

	nextMonth := model.NewDate(today.Year(), today.Month(), 1)
	nextMonth = model.DateOf(nextMonth.AddDate(0, 1, 0))
	require.ErrorIs(t, v.ValidateReleaseDate(nextMonth), ErrInvalidReleaseDate)
	require.ErrorIs(t, v.ValidateReleaseDate(model.NewDate(today.Year()+1, time.January, 1)), ErrInvalidReleaseDate)
}

func TestValidateMovieStock(t *testing.T) {
	v := NewMovieValidator(nil)

	assert.NoError(t, v.ValidateStock(0))
	assert.NoError(t, v.ValidateStock(10))
	require.ErrorIs(t, v.ValidateStock(-1), ErrInvalidInput)
}

func TestValidateUniqueTitle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	v := NewMovieValidator(repository.NewMovieRepo(db))
	q := regexp.QuoteMeta(`SELECT id, title, release_date, director, genre, stock, created_at, updated_at FROM movies WHERE LOWER(title) = LOWER(?)`)

	t.Run("free title", func(t *testing.T) {
		mock.ExpectQuery(q).WithArgs("Dune").WillReturnError(sql.ErrNoRows)
		assert.NoError(t, v.ValidateUniqueTitle(context.Background(), "Dune", 0))
	})

	t.Run("taken by another movie", func(t *testing.T) {
		mock.ExpectQuery(q).WithArgs("dune").WillReturnRows(movieRow(3, "Dune", 1))
		require.ErrorIs(t, v.ValidateUniqueTitle(context.Background(), "dune", 0), ErrDuplicateTitle)
	})

	t.Run("own title on update", func(t *testing.T) {
		mock.ExpectQuery(q).WithArgs("Dune").WillReturnRows(movieRow(3, "Dune", 1))
		assert.NoError(t, v.ValidateUniqueTitle(context.Background(), "Dune", 3))
	})
}
