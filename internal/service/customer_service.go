package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kleberlz17/locadora-api/internal/model"
	"github.com/kleberlz17/locadora-api/internal/repository"
)

// CustomerService implements registration, lookups and the
// field-update operations for customers.
type CustomerService struct {
	customers *repository.CustomerRepo
	validator *CustomerValidator
	log       zerolog.Logger
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(customers *repository.CustomerRepo, log zerolog.Logger) *CustomerService {
	if customers == nil {
		panic("nil repository passed to NewCustomerService")
	}
	return &CustomerService{
		customers: customers,
		validator: NewCustomerValidator(customers),
		log:       log,
	}
}

// Create registers a new customer.  The national id is required and the
// identifying fields must not collide with another customer.
func (s *CustomerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if strings.TrimSpace(c.NationalID) == "" {
		return nil, fmt.Errorf("%w: national id is required", ErrInvalidInput)
	}
	if err := s.validator.ValidateAll(ctx, c); err != nil {
		return nil, err
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info().Int64("customer_id", c.ID).Msg("customer registered")
	return c, nil
}

// GetByID returns the customer or repository.ErrCustomerNotFound.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// SearchByName returns customers whose name contains the fragment,
// ignoring case.  The result may be empty.
func (s *CustomerService) SearchByName(ctx context.Context, name string) ([]model.Customer, error) {
	return s.customers.SearchByName(ctx, name)
}

// GetByNationalID returns the customer holding the national id,
// ignoring case.
func (s *CustomerService) GetByNationalID(ctx context.Context, nationalID string) (*model.Customer, error) {
	return s.customers.GetByNationalID(ctx, nationalID)
}

// CustomerPatch is a sparse set of customer fields for partial update.
// Only non-nil fields are applied.
type CustomerPatch struct {
	Name       *string     `json:"name"`
	BirthDate  *model.Date `json:"birth_date"`
	NationalID *string     `json:"national_id"`
	Phone      *string     `json:"phone"`
	Email      *string     `json:"email"`
	Address    *string     `json:"address"`
}

// PartialUpdate applies the provided fields and persists the new
// version.  Unlike creation it runs no per-field validation; the
// unique indexes remain the backstop for colliding values.
func (s *CustomerService) PartialUpdate(ctx context.Context, id int64, patch CustomerPatch) (*model.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.BirthDate != nil {
		customer.BirthDate = *patch.BirthDate
	}
	if patch.NationalID != nil {
		customer.NationalID = *patch.NationalID
	}
	if patch.Phone != nil {
		customer.Phone = *patch.Phone
	}
	if patch.Email != nil {
		customer.Email = *patch.Email
	}
	if patch.Address != nil {
		customer.Address = *patch.Address
	}
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// SetPhone replaces the customer's phone after checking uniqueness.
func (s *CustomerService) SetPhone(ctx context.Context, id int64, phone string) (*model.Customer, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: phone must not be empty", ErrInvalidInput)
	}
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateUniquePhone(ctx, phone, id); err != nil {
		return nil, err
	}
	customer.Phone = phone
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// SetEmail replaces the customer's email after checking uniqueness.
func (s *CustomerService) SetEmail(ctx context.Context, id int64, email string) (*model.Customer, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email must not be empty", ErrInvalidInput)
	}
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateUniqueEmail(ctx, email, id); err != nil {
		return nil, err
	}
	customer.Email = email
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// SetAddress replaces the customer's address.
func (s *CustomerService) SetAddress(ctx context.Context, id int64, address string) (*model.Customer, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: address must not be empty", ErrInvalidInput)
	}
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Address = address
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes the customer.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		return err
	}
	return s.customers.Delete(ctx, id)
}
