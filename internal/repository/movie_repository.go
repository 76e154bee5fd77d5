package repository

import (
	"context"
	"database/sql"

	"github.com/kleberlz17/locadora-api/internal/model"
)

// MovieRepo provides CRUD operations and catalog lookups for movies.
// Title, director and genre searches ignore case; director and genre are
// substring matches.  Stock mutation by the rental workflow goes through
// DecrementStockTx so the check and the write happen in one statement.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo returns a MovieRepo bound to the given database.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *MovieRepo) DB() *sql.DB { return r.db }

const movieColumns = `id, title, release_date, director, genre, stock, created_at, updated_at`

func scanMovie(row interface{ Scan(...any) error }, m *model.Movie) error {
	return row.Scan(&m.ID, &m.Title, &m.ReleaseDate, &m.Director, &m.Genre, &m.Stock, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MovieRepo) queryMovies(ctx context.Context, q string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	movies := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// Create inserts a new movie and populates the generated id and the
// DB-default timestamps on the given struct.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (title, release_date, director, genre, stock) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.ReleaseDate, m.Director, m.Genre, m.Stock)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	const sel = `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`
	return scanMovie(r.db.QueryRowContext(ctx, sel, m.ID), m)
}

// GetByID returns the movie with the given id, or ErrMovieNotFound.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`
	var m model.Movie
	if err := scanMovie(r.db.QueryRowContext(ctx, q, id), &m); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetByTitleFold returns the movie whose title equals the given one
// ignoring case, or ErrMovieNotFound.  Used by the title uniqueness
// validator.
func (r *MovieRepo) GetByTitleFold(ctx context.Context, title string) (*model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE LOWER(title) = LOWER(?)`
	var m model.Movie
	if err := scanMovie(r.db.QueryRowContext(ctx, q, title), &m); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// SearchByTitle returns all movies whose title contains the fragment,
// ignoring case.
func (r *MovieRepo) SearchByTitle(ctx context.Context, title string) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE LOWER(title) LIKE LOWER(?) ORDER BY id`
	return r.queryMovies(ctx, q, "%"+title+"%")
}

// ListByReleaseDate returns all movies released on the exact date.
func (r *MovieRepo) ListByReleaseDate(ctx context.Context, date model.Date) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE release_date = ? ORDER BY id`
	return r.queryMovies(ctx, q, date)
}

// SearchByDirector returns all movies whose director contains the
// fragment, ignoring case.
func (r *MovieRepo) SearchByDirector(ctx context.Context, director string) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE LOWER(director) LIKE LOWER(?) ORDER BY id`
	return r.queryMovies(ctx, q, "%"+director+"%")
}

// SearchByGenre returns all movies whose genre contains the fragment,
// ignoring case.
func (r *MovieRepo) SearchByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE LOWER(genre) LIKE LOWER(?) ORDER BY id`
	return r.queryMovies(ctx, q, "%"+genre+"%")
}

// Update writes every mutable column of the movie identified by m.ID
// and reloads the stored row into m.  Returns ErrMovieNotFound when the
// id does not exist.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	const q = `UPDATE movies SET title = ?, release_date = ?, director = ?, genre = ?, stock = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.ReleaseDate, m.Director, m.Genre, m.Stock, m.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM movies WHERE id = ?`, m.ID).Scan(&exists); err != nil {
			if err == sql.ErrNoRows {
				return ErrMovieNotFound
			}
			return err
		}
	}
	const sel = `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`
	return scanMovie(r.db.QueryRowContext(ctx, sel, m.ID), m)
}

// DecrementStockTx atomically takes qty units off the movie's stock
// within the given transaction.  The condition is part of the UPDATE so
// two concurrent rentals cannot both take the last unit: the statement
// only fires when stock >= qty.  Returns true when a row was updated,
// false when the movie is missing or the stock was insufficient.
func (r *MovieRepo) DecrementStockTx(ctx context.Context, tx *sql.Tx, movieID, qty int64) (bool, error) {
	const q = `UPDATE movies SET stock = stock - ? WHERE id = ? AND stock >= ?`
	res, err := tx.ExecContext(ctx, q, qty, movieID, qty)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes the movie with the given id.  Returns ErrMovieNotFound
// when no row was deleted.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
