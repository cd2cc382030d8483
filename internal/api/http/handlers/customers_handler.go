package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scaffold-rental-service/internal/api/dto"
	"github.com/spec-kit/scaffold-rental-service/internal/domain"
	"github.com/spec-kit/scaffold-rental-service/internal/service"
	apperrors "github.com/spec-kit/scaffold-rental-service/pkg/util"
)

// CustomersHandler exposes the customer directory endpoints.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customers *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

// Create handles POST /customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	customer := &domain.Customer{
		NIC:  req.NIC,
		Name: req.Name,
		Address: domain.Address{
			HouseNo: req.Address.HouseNo,
			Street:  req.Address.Street,
			City:    req.Address.City,
		},
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	if req.FirstDateDeal != "" {
		date, err := time.Parse(dto.DateLayout, req.FirstDateDeal)
		if err != nil {
			return apperrors.NewValidationError("firstDateDeal must be yyyy-MM-dd", nil)
		}
		customer.FirstDateDeal = &date
	}
	if req.LastDateDeal != "" {
		date, err := time.Parse(dto.DateLayout, req.LastDateDeal)
		if err != nil {
			return apperrors.NewValidationError("lastDateDeal must be yyyy-MM-dd", nil)
		}
		customer.LastDateDeal = &date
	}

	created, err := h.customers.Add(c.UserContext(), customer)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.CustomerFromDomain(created)})
}

// List handles GET /customers. Soft-deleted customers are included.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.customers.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": customersResponse(customers)})
}

// Get handles GET /customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	customer, err := h.customers.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CustomerFromDomain(customer)})
}

// SoftDelete handles DELETE /customers/:id. Unknown ids are a silent no-op.
func (h *CustomersHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.customers.SoftDelete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

// Search handles GET /customers/search?search=.
func (h *CustomersHandler) Search(c *fiber.Ctx) error {
	customers, err := h.customers.Search(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": customersResponse(customers)})
}

// ActiveCount handles GET /customers/active-count.
func (h *CustomersHandler) ActiveCount(c *fiber.Ctx) error {
	count, err := h.customers.ActiveCount(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"count": count}})
}

// UpdateName handles PUT /customers/:id/name.
func (h *CustomersHandler) UpdateName(c *fiber.Ctx) error {
	return h.updateValue(c, h.customers.UpdateName)
}

// UpdateNic handles PUT /customers/:id/nic.
func (h *CustomersHandler) UpdateNic(c *fiber.Ctx) error {
	return h.updateValue(c, h.customers.UpdateNic)
}

// UpdateEmail handles PUT /customers/:id/email.
func (h *CustomersHandler) UpdateEmail(c *fiber.Ctx) error {
	return h.updateValue(c, h.customers.UpdateEmail)
}

// UpdatePhone handles PUT /customers/:id/phone.
func (h *CustomersHandler) UpdatePhone(c *fiber.Ctx) error {
	return h.updateValue(c, h.customers.UpdatePhone)
}

// UpdateFirstDealDate handles PUT /customers/:id/first-deal-date.
func (h *CustomersHandler) UpdateFirstDealDate(c *fiber.Ctx) error {
	return h.updateDate(c, h.customers.UpdateFirstDealDate)
}

// UpdateLastDealDate handles PUT /customers/:id/last-deal-date.
func (h *CustomersHandler) UpdateLastDealDate(c *fiber.Ctx) error {
	return h.updateDate(c, h.customers.UpdateLastDealDate)
}

// UpdateAddress handles PUT /customers/:id/address. The owned address row is
// mutated in place; the reference never changes.
func (h *CustomersHandler) UpdateAddress(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.AddressPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	customer, err := h.customers.UpdateAddress(c.UserContext(), id, req.HouseNo, req.Street, req.City)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CustomerFromDomain(customer)})
}

func (h *CustomersHandler) updateValue(c *fiber.Ctx, update func(ctx context.Context, id int64, value string) (*domain.Customer, error)) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.ValueUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Value == nil {
		return fiber.NewError(http.StatusBadRequest, "value required")
	}
	customer, err := update(c.UserContext(), id, *req.Value)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CustomerFromDomain(customer)})
}

func (h *CustomersHandler) updateDate(c *fiber.Ctx, update func(ctx context.Context, id int64, date time.Time) (*domain.Customer, error)) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.DateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return apperrors.NewValidationError("date must be yyyy-MM-dd", map[string]any{"date": req.Date})
	}
	customer, err := update(c.UserContext(), id, date)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CustomerFromDomain(customer)})
}

func customersResponse(customers []domain.Customer) []dto.CustomerResponse {
	resp := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, dto.CustomerFromDomain(&customers[i]))
	}
	return resp
}

func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
