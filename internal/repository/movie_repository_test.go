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
)

func newMovieRepoTest(t *testing.T) (*MovieRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMovieRepo(db), mock
}

func movieRows(ids ...int64) *sqlmock.Rows {
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "release_date", "director", "genre", "stock", "created_at", "updated_at"})
	for _, id := range ids {
		rows.AddRow(id, "Dune", time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC), "Villeneuve", "sci-fi", 3, now, now)
	}
	return rows
}

func TestMovieDecrementStockTx(t *testing.T) {
	const update = `UPDATE movies SET stock = stock - ? WHERE id = ? AND stock >= ?`

	t.Run("enough stock", func(t *testing.T) {
		repo, mock := newMovieRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(update)).WithArgs(int64(2), int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		tx, err := repo.DB().Begin()
		require.NoError(t, err)
		ok, err := repo.DecrementStockTx(context.Background(), tx, 1, 2)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("insufficient stock matches no row", func(t *testing.T) {
		repo, mock := newMovieRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(update)).WithArgs(int64(5), int64(1), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		tx, err := repo.DB().Begin()
		require.NoError(t, err)
		ok, err := repo.DecrementStockTx(context.Background(), tx, 1, 5)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMovieGetByID(t *testing.T) {
	repo, mock := newMovieRepoTest(t)
	q := regexp.QuoteMeta(`SELECT ` + movieColumns + ` FROM movies WHERE id = ?`)

	mock.ExpectQuery(q).WithArgs(int64(1)).WillReturnRows(movieRows(1))
	m, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Dune", m.Title)
	assert.Equal(t, "2020-01-15", m.ReleaseDate.String())

	mock.ExpectQuery(q).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieSearchByTitleWrapsFragment(t *testing.T) {
	repo, mock := newMovieRepoTest(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + movieColumns + ` FROM movies WHERE LOWER(title) LIKE LOWER(?) ORDER BY id`)).
		WithArgs("%dun%").
		WillReturnRows(movieRows(1, 2))

	movies, err := repo.SearchByTitle(context.Background(), "dun")
	require.NoError(t, err)
	assert.Len(t, movies, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieDeleteNotFound(t *testing.T) {
	repo, mock := newMovieRepoTest(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM movies WHERE id = ?`)).WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), 99), ErrMovieNotFound)
}
