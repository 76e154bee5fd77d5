package model

import "time"

// Movie is a catalog entry with a stock counter.  Stock is decremented
// by the rental workflow inside the same transaction that records the
// rental, and is directly editable through the stock-update operation.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – movie title (unique, case-insensitive).
//  ReleaseDate – theatrical release date.
//  Director    – director name.
//  Genre       – genre label.
//  Stock       – units available for rent (never negative).
type Movie struct {
	ID          int64     `json:"id"`           // movies.id
	Title       string    `json:"title"`        // movies.title
	ReleaseDate Date      `json:"release_date"` // movies.release_date
	Director    string    `json:"director"`     // movies.director
	Genre       string    `json:"genre"`        // movies.genre
	Stock       int64     `json:"stock"`        // movies.stock
	CreatedAt   time.Time `json:"created_at"`   // movies.created_at
	UpdatedAt   time.Time `json:"updated_at"`   // movies.updated_at
}
