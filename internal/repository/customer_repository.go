package repository

import (
	"context"
	"database/sql"

	"github.com/kleberlz17/locadora-api/internal/model"
)

// CustomerRepo provides CRUD operations and indexed lookups for
// customers.  Name searches are substring matches ignoring case;
// the national id lookup also ignores case.  Phone and email lookups
// are exact matches used by the uniqueness validators.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo returns a CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

const customerColumns = `id, name, birth_date, national_id, phone, email, address, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }, c *model.Customer) error {
	return row.Scan(&c.ID, &c.Name, &c.BirthDate, &c.NationalID, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt)
}

// Create inserts a new customer and populates the generated id and the
// DB-default timestamps on the given struct.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	const q = `INSERT INTO customers (name, birth_date, national_id, phone, email, address) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.BirthDate, c.NationalID, c.Phone, c.Email, c.Address)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	// Query back the full row to populate timestamps and defaults
	const sel = `SELECT ` + customerColumns + ` FROM customers WHERE id = ?`
	return scanCustomer(r.db.QueryRowContext(ctx, sel, c.ID), c)
}

// GetByID returns the customer with the given id, or ErrCustomerNotFound.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE id = ?`
	var c model.Customer
	if err := scanCustomer(r.db.QueryRowContext(ctx, q, id), &c); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// SearchByName returns all customers whose name contains the given
// fragment, ignoring case.  The result may be empty.
func (r *CustomerRepo) SearchByName(ctx context.Context, name string) ([]model.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE LOWER(name) LIKE LOWER(?) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, "%"+name+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	customers := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// GetByNationalID returns the customer holding the given national id,
// compared case-insensitively, or ErrCustomerNotFound.
func (r *CustomerRepo) GetByNationalID(ctx context.Context, nationalID string) (*model.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE LOWER(national_id) = LOWER(?)`
	var c model.Customer
	if err := scanCustomer(r.db.QueryRowContext(ctx, q, nationalID), &c); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetByPhone returns the customer with the given phone, or ErrCustomerNotFound.
func (r *CustomerRepo) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE phone = ?`
	var c model.Customer
	if err := scanCustomer(r.db.QueryRowContext(ctx, q, phone), &c); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetByEmail returns the customer with the given email, or ErrCustomerNotFound.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE email = ?`
	var c model.Customer
	if err := scanCustomer(r.db.QueryRowContext(ctx, q, email), &c); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Update writes every mutable column of the customer identified by
// c.ID.  Callers load the current row, apply changes to the copy and
// hand the new version here; the row in the DB is replaced wholesale.
// Returns ErrCustomerNotFound when the id does not exist.
func (r *CustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	const q = `UPDATE customers SET name = ?, birth_date = ?, national_id = ?, phone = ?, email = ?, address = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.BirthDate, c.NationalID, c.Phone, c.Email, c.Address, c.ID)
	if err != nil {
		return err
	}
	// RowsAffected is zero both for a missing row and for a no-op write,
	// so existence is checked explicitly only when nothing changed.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM customers WHERE id = ?`, c.ID).Scan(&exists); err != nil {
			if err == sql.ErrNoRows {
				return ErrCustomerNotFound
			}
			return err
		}
	}
	const sel = `SELECT ` + customerColumns + ` FROM customers WHERE id = ?`
	return scanCustomer(r.db.QueryRowContext(ctx, sel, c.ID), c)
}

// Delete removes the customer with the given id.  Returns
// ErrCustomerNotFound when no row was deleted.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
