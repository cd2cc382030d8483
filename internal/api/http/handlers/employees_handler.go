package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scaffold-rental-service/internal/api/dto"
	"github.com/spec-kit/scaffold-rental-service/internal/domain"
	"github.com/spec-kit/scaffold-rental-service/internal/service"
)

// EmployeesHandler exposes the employee directory endpoints.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees}
}

// Create handles POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}
	role, err := domain.ParseEmployeeRole(req.Role)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "role must be one of Manager, Clerk, Delivery, Admin")
	}

	employee := &domain.Employee{
		NIC:         req.NIC,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address: domain.Address{
			HouseNo: req.Address.HouseNo,
			Street:  req.Address.Street,
			City:    req.Address.City,
		},
		Role:     role,
		Username: req.Username,
	}

	created, err := h.employees.Add(c.UserContext(), employee, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.EmployeeFromDomain(created)})
}

// Login handles POST /employees/login.
func (h *EmployeesHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	employee, token, expiresAt, err := h.employees.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"employee": dto.EmployeeFromDomain(employee),
			"auth":     dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
		},
	})
}

// List handles GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.employees.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeesResponse(employees)})
}

// Get handles GET /employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	employee, err := h.employees.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EmployeeFromDomain(employee)})
}

// Delete handles DELETE /employees/:id. The delete is physical.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.employees.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

// Search handles GET /employees/search?search=.
func (h *EmployeesHandler) Search(c *fiber.Ctx) error {
	employees, err := h.employees.Search(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeesResponse(employees)})
}

// UpdateRole handles PUT /employees/:id/role.
func (h *EmployeesHandler) UpdateRole(c *fiber.Ctx) error {
	return h.updateValue(c, h.employees.UpdateRole)
}

// UpdateName handles PUT /employees/:id/name.
func (h *EmployeesHandler) UpdateName(c *fiber.Ctx) error {
	return h.updateValue(c, h.employees.UpdateName)
}

// UpdateNic handles PUT /employees/:id/nic.
func (h *EmployeesHandler) UpdateNic(c *fiber.Ctx) error {
	return h.updateValue(c, h.employees.UpdateNic)
}

// UpdateEmail handles PUT /employees/:id/email.
func (h *EmployeesHandler) UpdateEmail(c *fiber.Ctx) error {
	return h.updateValue(c, h.employees.UpdateEmail)
}

// UpdatePhone handles PUT /employees/:id/phone.
func (h *EmployeesHandler) UpdatePhone(c *fiber.Ctx) error {
	return h.updateValue(c, h.employees.UpdatePhone)
}

// UpdatePassword handles PUT /employees/:id/password. Plaintext in, hash
// stored, nothing echoed back.
func (h *EmployeesHandler) UpdatePassword(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.ValueUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Value == nil || *req.Value == "" {
		return fiber.NewError(http.StatusBadRequest, "password required")
	}
	employee, err := h.employees.UpdatePassword(c.UserContext(), id, *req.Value)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EmployeeFromDomain(employee)})
}

// UpdateAddress handles PUT /employees/:id/address.
func (h *EmployeesHandler) UpdateAddress(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req dto.AddressPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	employee, err := h.employees.UpdateAddress(c.UserContext(), id, req.HouseNo, req.Street, req.City)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EmployeeFromDomain(employee)})
}

func (h *EmployeesHandler) updateValue(c *fiber.Ctx, update func(ctx context.Context, id int64, value string) (*domain.Employee, error)) error {
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
	employee, err := update(c.UserContext(), id, *req.Value)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EmployeeFromDomain(employee)})
}

func employeesResponse(employees []domain.Employee) []dto.EmployeeResponse {
	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, dto.EmployeeFromDomain(&employees[i]))
	}
	return resp
}
