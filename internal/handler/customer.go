package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kleberlz17/locadora-api/internal/model"
	"github.com/kleberlz17/locadora-api/internal/service"
)

// CustomerHandler exposes the customer endpoints.
type CustomerHandler struct {
	Customers *service.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	if customers == nil {
		panic("nil service passed to NewCustomerHandler")
	}
	return &CustomerHandler{Customers: customers}
}

type createCustomerRequest struct {
	Name       string     `json:"name" validate:"required,min=3,max=100"`
	BirthDate  model.Date `json:"birth_date"`
	NationalID string     `json:"national_id" validate:"required,len=11,numeric"`
	Phone      string     `json:"phone" validate:"required"`
	Email      string     `json:"email" validate:"required,email"`
	Address    string     `json:"address" validate:"required,min=5,max=100"`
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.BirthDate.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "birth_date is required"})
	}
	customer := &model.Customer{
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
	}
	created, err := h.Customers.Create(c.Request().Context(), customer)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": created.ID})
}

// GetByID handles GET /customers/:id.
func (h *CustomerHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	customer, err := h.Customers.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// SearchByName handles GET /customers/name/:name.  An empty result is a 404.
func (h *CustomerHandler) SearchByName(c echo.Context) error {
	customers, err := h.Customers.SearchByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return writeError(c, err)
	}
	if len(customers) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no customer found"})
	}
	return c.JSON(http.StatusOK, customers)
}

// GetByNationalID handles GET /customers/nationalId/:nationalId.
func (h *CustomerHandler) GetByNationalID(c echo.Context) error {
	customer, err := h.Customers.GetByNationalID(c.Request().Context(), c.Param("nationalId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// Update handles PUT /customers/:id.  It applies only the fields
// present in the body.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var patch service.CustomerPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	customer, err := h.Customers.PartialUpdate(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// SetPhone handles PUT /customers/:id/phone.
func (h *CustomerHandler) SetPhone(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Phone string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	customer, err := h.Customers.SetPhone(c.Request().Context(), id, body.Phone)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// SetEmail handles PUT /customers/:id/email.
func (h *CustomerHandler) SetEmail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	customer, err := h.Customers.SetEmail(c.Request().Context(), id, body.Email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// SetAddress handles PUT /customers/:id/address.
func (h *CustomerHandler) SetAddress(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Address string `json:"address"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	customer, err := h.Customers.SetAddress(c.Request().Context(), id, body.Address)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /customers/:id.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Customers.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
