// Package queue defines message payloads exchanged over the message
// broker, the publisher used after a rental commits and the background
// consumer that writes the rental audit log.
package queue

// RentalCreatedEvent is published when a rental is successfully
// persisted.  It carries enough information for downstream consumers to
// log, notify or trigger analytics without querying the primary
// database.
type RentalCreatedEvent struct {
	EventID      string `json:"event_id"`
	RentalID     int64  `json:"rental_id"`
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	MovieID      int64  `json:"movie_id"`
	MovieTitle   string `json:"movie_title"`
	Quantity     int64  `json:"quantity"`
	RentalDate   string `json:"rental_date"`
	DueDate      string `json:"due_date"`
	CreatedAt    string `json:"created_at"`
}
