package dto

import (
	"time"

	"github.com/spec-kit/scaffold-rental-service/internal/domain"
)

// CreateEmployeeRequest payload. Password arrives in plaintext and is hashed
// before it ever reaches the store.
type CreateEmployeeRequest struct {
	NIC         string         `json:"nic"`
	Name        string         `json:"name"`
	PhoneNumber string         `json:"phoneNumber"`
	Email       string         `json:"email"`
	Address     AddressPayload `json:"address"`
	Role        string         `json:"role"`
	Username    string         `json:"username"`
	Password    string         `json:"password"`
}

// LoginRequest payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse payload.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EmployeeResponse payload. The password hash is never serialized.
type EmployeeResponse struct {
	ID          int64           `json:"id"`
	NIC         string          `json:"nic"`
	Name        string          `json:"name"`
	PhoneNumber string          `json:"phoneNumber"`
	Email       string          `json:"email"`
	Address     AddressResponse `json:"address"`
	Role        string          `json:"role"`
	Username    string          `json:"username"`
}

// EmployeeFromDomain maps a domain employee onto the wire shape.
func EmployeeFromDomain(employee *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          employee.ID,
		NIC:         employee.NIC,
		Name:        employee.Name,
		PhoneNumber: employee.PhoneNumber,
		Email:       employee.Email,
		Address:     AddressFromDomain(employee.Address),
		Role:        string(employee.Role),
		Username:    employee.Username,
	}
}
