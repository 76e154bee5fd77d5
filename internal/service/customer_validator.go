package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kleberlz17/locadora-api/internal/model"
	"github.com/kleberlz17/locadora-api/internal/repository"
)

// CustomerValidator enforces uniqueness of the identifying customer
// fields.  Each check looks the value up in the repository and fails
// when a different customer than excludingID already holds it.  The
// national id comparison ignores case; phone and email are exact.
type CustomerValidator struct {
	customers *repository.CustomerRepo
}

// NewCustomerValidator returns a CustomerValidator backed by the given repo.
func NewCustomerValidator(customers *repository.CustomerRepo) *CustomerValidator {
	return &CustomerValidator{customers: customers}
}

func (v *CustomerValidator) checkUnique(existing *model.Customer, err error, excludingID int64, field string) error {
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludingID {
		return fmt.Errorf("%w: %s already registered to another customer", ErrDuplicateField, field)
	}
	return nil
}

// ValidateUniqueNationalID fails when another customer holds the id.
func (v *CustomerValidator) ValidateUniqueNationalID(ctx context.Context, nationalID string, excludingID int64) error {
	existing, err := v.customers.GetByNationalID(ctx, nationalID)
	return v.checkUnique(existing, err, excludingID, "national id")
}

// ValidateUniquePhone fails when another customer holds the phone.
func (v *CustomerValidator) ValidateUniquePhone(ctx context.Context, phone string, excludingID int64) error {
	existing, err := v.customers.GetByPhone(ctx, phone)
	return v.checkUnique(existing, err, excludingID, "phone")
}

// ValidateUniqueEmail fails when another customer holds the email.
func (v *CustomerValidator) ValidateUniqueEmail(ctx context.Context, email string, excludingID int64) error {
	existing, err := v.customers.GetByEmail(ctx, email)
	return v.checkUnique(existing, err, excludingID, "email")
}

// ValidateAll runs the three uniqueness checks in a fixed order
// (national id, phone, email), stopping at the first failure.
func (v *CustomerValidator) ValidateAll(ctx context.Context, c *model.Customer) error {
	if err := v.ValidateUniqueNationalID(ctx, c.NationalID, c.ID); err != nil {
		return err
	}
	if err := v.ValidateUniquePhone(ctx, c.Phone, c.ID); err != nil {
		return err
	}
	return v.ValidateUniqueEmail(ctx, c.Email, c.ID)
}
