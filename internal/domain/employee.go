package domain

import (
	"fmt"
	"strings"
)

// EmployeeRole enumerates the fixed set of employee roles.
type EmployeeRole string

const (
	RoleManager  EmployeeRole = "Manager"
	RoleClerk    EmployeeRole = "Clerk"
	RoleDelivery EmployeeRole = "Delivery"
	RoleAdmin    EmployeeRole = "Admin"
)

var employeeRoles = map[string]EmployeeRole{
	"manager":  RoleManager,
	"clerk":    RoleClerk,
	"delivery": RoleDelivery,
	"admin":    RoleAdmin,
}

// ParseEmployeeRole maps arbitrary-cased input to a canonical role.
// Unknown input yields an error; the caller decides how to surface it.
func ParseEmployeeRole(input string) (EmployeeRole, error) {
	role, ok := employeeRoles[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		return "", fmt.Errorf("unknown employee role %q", input)
	}
	return role, nil
}

// Employee models a staff member. PasswordHash only ever holds a bcrypt
// hash; plaintext is hashed before the record first touches the store.
type Employee struct {
	ID           int64        `json:"id"`
	NIC          string       `json:"nic"`
	Name         string       `json:"name"`
	PhoneNumber  string       `json:"phoneNumber"`
	Email        string       `json:"email"`
	Address      Address      `json:"address"`
	Role         EmployeeRole `json:"role"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
}
