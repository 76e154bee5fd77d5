package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kleberlz17/locadora-api/internal/model"
	"github.com/kleberlz17/locadora-api/internal/repository"
)

// MovieValidator checks catalog constraints: unique title (exact match,
// case-insensitive), non-negative stock and a release date that is not
// in a future month.
type MovieValidator struct {
	movies *repository.MovieRepo
}

// NewMovieValidator returns a MovieValidator backed by the given repo.
func NewMovieValidator(movies *repository.MovieRepo) *MovieValidator {
	return &MovieValidator{movies: movies}
}

// ValidateUniqueTitle fails when a movie other than excludingID already
// carries the title, compared case-insensitively.
func (v *MovieValidator) ValidateUniqueTitle(ctx context.Context, title string, excludingID int64) error {
	existing, err := v.movies.GetByTitleFold(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludingID {
		return fmt.Errorf("%w: a movie titled %q already exists", ErrDuplicateTitle, title)
	}
	return nil
}

// ValidateStock fails when the stock count is negative.
func (v *MovieValidator) ValidateStock(stock int64) error {
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	return nil
}

// ValidateReleaseDate fails when the release date falls in a later
// month than today.  The comparison is by year and month only, not the
// full date: a release later this month is accepted.
func (v *MovieValidator) ValidateReleaseDate(releaseDate model.Date) error {
	today := model.Today()
	if releaseDate.Year() > today.Year() ||
		(releaseDate.Year() == today.Year() && releaseDate.Month() > today.Month()) {
		return fmt.Errorf("%w: release date is in a future month", ErrInvalidReleaseDate)
	}
	return nil
}

// ValidateAll runs title uniqueness, stock and release date checks in
// that order, stopping at the first failure.
func (v *MovieValidator) ValidateAll(ctx context.Context, movie *model.Movie) error {
	if err := v.ValidateUniqueTitle(ctx, movie.Title, movie.ID); err != nil {
		return err
	}
	if err := v.ValidateStock(movie.Stock); err != nil {
		return err
	}
	return v.ValidateReleaseDate(movie.ReleaseDate)
}
