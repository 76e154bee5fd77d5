// Package service holds the business rules of the rental store: the
// validator predicate sets and the customer, movie and rental workflows.
// Failures are reported through the sentinel errors below, wrapped with
// detail via fmt.Errorf("%w: ...") so handlers can match with errors.Is
// and still surface a readable message.
package service

import "errors"

// ErrInvalidInput indicates an empty or null value for a required field.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidRental indicates a rental date, due date or quantity rule
// violation.
var ErrInvalidRental = errors.New("invalid rental")

// ErrDuplicateRental indicates another open rental already exists for
// the same customer, movie and rental date.
var ErrDuplicateRental = errors.New("duplicate open rental")

// ErrInsufficientStock indicates the movie has fewer units in stock than
// the requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrDuplicateField indicates a customer uniqueness violation (national
// id, phone or email already belongs to a different customer).
var ErrDuplicateField = errors.New("duplicate field")

// ErrDuplicateTitle indicates another movie already carries the title.
var ErrDuplicateTitle = errors.New("duplicate title")

// ErrInvalidReleaseDate indicates a release date in a future month.
var ErrInvalidReleaseDate = errors.New("invalid release date")
