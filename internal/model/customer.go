package model

import "time"

// Customer is a registered client of the rental store.  NationalID,
// Phone and Email are unique across customers; uniqueness is enforced
// by the validators against the repository, not only by the schema.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – full name.
//  BirthDate  – date of birth.
//  NationalID – 11-digit national identification number (unique).
//  Phone      – contact phone (unique).
//  Email      – contact email (unique).
//  Address    – residential address.
type Customer struct {
	ID         int64     `json:"id"`          // customers.id
	Name       string    `json:"name"`        // customers.name
	BirthDate  Date      `json:"birth_date"`  // customers.birth_date
	NationalID string    `json:"national_id"` // customers.national_id
	Phone      string    `json:"phone"`       // customers.phone
	Email      string    `json:"email"`       // customers.email
	Address    string    `json:"address"`     // customers.address
	CreatedAt  time.Time `json:"created_at"`  // customers.created_at
	UpdatedAt  time.Time `json:"updated_at"`  // customers.updated_at
}
