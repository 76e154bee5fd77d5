package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kleberlz17/locadora-api/internal/model"
	"github.com/kleberlz17/locadora-api/internal/repository"
)

// MovieService implements catalog entry, lookups and the field-update
// operations for movies.
type MovieService struct {
	movies    *repository.MovieRepo
	validator *MovieValidator
	log       zerolog.Logger
}

// NewMovieService constructs a MovieService.
func NewMovieService(movies *repository.MovieRepo, log zerolog.Logger) *MovieService {
	if movies == nil {
		panic("nil repository passed to NewMovieService")
	}
	return &MovieService{
		movies:    movies,
		validator: NewMovieValidator(movies),
		log:       log,
	}
}

// Create adds a movie to the catalog.  The title is trimmed and must be
// non-empty; the composite validation covers uniqueness, stock range
// and release date.
func (s *MovieService) Create(ctx context.Context, m *model.Movie) (*model.Movie, error) {
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if err := s.validator.ValidateAll(ctx, m); err != nil {
		return nil, err
	}
	if err := s.movies.Create(ctx, m); err != nil {
		return nil, err
	}
	s.log.Info().Int64("movie_id", m.ID).Str("title", m.Title).Msg("movie added to catalog")
	return m, nil
}

// GetByID returns the movie or repository.ErrMovieNotFound.
func (s *MovieService) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	return s.movies.GetByID(ctx, id)
}

// SearchByTitle returns movies whose title contains the fragment,
// ignoring case.
func (s *MovieService) SearchByTitle(ctx context.Context, title string) ([]model.Movie, error) {
	return s.movies.SearchByTitle(ctx, title)
}

// ListByReleaseDate returns movies released on the exact date.
func (s *MovieService) ListByReleaseDate(ctx context.Context, date model.Date) ([]model.Movie, error) {
	return s.movies.ListByReleaseDate(ctx, date)
}

// SearchByDirector returns movies whose director contains the fragment.
func (s *MovieService) SearchByDirector(ctx context.Context, director string) ([]model.Movie, error) {
	return s.movies.SearchByDirector(ctx, director)
}

// SearchByGenre returns movies whose genre contains the fragment.
func (s *MovieService) SearchByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
	return s.movies.SearchByGenre(ctx, genre)
}

// SetStock replaces the stock counter.  Negative values are rejected.
func (s *MovieService) SetStock(ctx context.Context, id, stock int64) (*model.Movie, error) {
	if err := s.validator.ValidateStock(stock); err != nil {
		return nil, err
	}
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	movie.Stock = stock
	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// SetReleaseDate replaces the release date.  The new date must be set
// and must not fall in a future month.
func (s *MovieService) SetReleaseDate(ctx context.Context, id int64, date model.Date) (*model.Movie, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: release date must not be null", ErrInvalidInput)
	}
	if err := s.validator.ValidateReleaseDate(date); err != nil {
		return nil, err
	}
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	movie.ReleaseDate = date
	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// SetTitle renames the movie.  The trimmed title must be non-empty and
// unique across the catalog.
func (s *MovieService) SetTitle(ctx context.Context, id int64, title string) (*model.Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if err := s.validator.ValidateUniqueTitle(ctx, title, id); err != nil {
		return nil, err
	}
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	movie.Title = title
	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// Delete removes the movie from the catalog.
func (s *MovieService) Delete(ctx context.Context, id int64) error {
	if _, err := s.movies.GetByID(ctx, id); err != nil {
		return err
	}
	return s.movies.Delete(ctx, id)
}
