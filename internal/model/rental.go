package model

import "time"

// Rental records a customer borrowing a quantity of a movie's stock for
// a bounded period.  A rental with Returned=false is "open"; at most one
// open rental may exist for the same customer, movie and rental date.
// Rentals reference customers and movies by id only; lookups in the other
// direction go through the repository indexes.
//
// Fields:
//  ID         – primary key identifier.
//  CustomerID – customer who rented.
//  MovieID    – movie rented.
//  RentalDate – day the rental started.
//  DueDate    – day the movie is due back.
//  Returned   – whether the movie came back (default false).
//  Quantity   – units rented (at least 1).
type Rental struct {
	ID         int64     `json:"id"`          // rentals.id
	CustomerID int64     `json:"customer_id"` // rentals.customer_id
	MovieID    int64     `json:"movie_id"`    // rentals.movie_id
	RentalDate Date      `json:"rental_date"` // rentals.rental_date
	DueDate    Date      `json:"due_date"`    // rentals.due_date
	Returned   bool      `json:"returned"`    // rentals.returned
	Quantity   int64     `json:"quantity"`    // rentals.quantity
	CreatedAt  time.Time `json:"created_at"`  // rentals.created_at
}
