package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleberlz17/locadora-api/internal/model"
)

func TestValidateRentalDate(t *testing.T) {
	v := NewRentalValidator(nil)

	assert.NoError(t, v.ValidateRentalDate(model.Today()))
	assert.NoError(t, v.ValidateRentalDate(model.Today().AddDays(-30)))
	require.ErrorIs(t, v.ValidateRentalDate(model.Today().AddDays(1)), ErrInvalidRental)
}

func TestValidateDueDate(t *testing.T) {
	v := NewRentalValidator(nil)

	assert.NoError(t, v.ValidateDueDate(model.Today()))
	assert.NoError(t, v.ValidateDueDate(model.Today().AddDays(14)))
	require.ErrorIs(t, v.ValidateDueDate(model.Today().AddDays(-1)), ErrInvalidRental)
}

func TestValidateQuantity(t *testing.T) {
	v := NewRentalValidator(nil)

	assert.NoError(t, v.ValidateQuantity(0))
	assert.NoError(t, v.ValidateQuantity(3))
	require.ErrorIs(t, v.ValidateQuantity(-1), ErrInvalidRental)
}

func TestValidateStock(t *testing.T) {
	v := NewRentalValidator(nil)

	movie := &model.Movie{ID: 1, Title: "Dune", Stock: 2}
	assert.NoError(t, v.ValidateStock(movie, 2))
	require.ErrorIs(t, v.ValidateStock(movie, 3), ErrInsufficientStock)
	require.ErrorIs(t, v.ValidateStock(nil, 1), ErrInsufficientStock)
}
