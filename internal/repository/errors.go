// Package repository defines error types that are reused across multiple
// repositories. These sentinel values let higher layers such as services
// and handlers distinguish failure scenarios without inspecting SQL
// errors directly; handlers translate each of them into an HTTP 404.
package repository

import "errors"

// ErrCustomerNotFound indicates that no customer matched the lookup.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrMovieNotFound indicates that no movie matched the lookup.
var ErrMovieNotFound = errors.New("movie not found")

// ErrRentalNotFound indicates that no rental matched the lookup.
var ErrRentalNotFound = errors.New("rental not found")
