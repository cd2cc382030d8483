package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCustomerCreated         EventType = "customer_created"
	EventCustomerUpdated         EventType = "customer_updated"
	EventCustomerSoftDeleted     EventType = "customer_soft_deleted"
	EventEmployeeCreated         EventType = "employee_created"
	EventEmployeeUpdated         EventType = "employee_updated"
	EventEmployeeDeleted         EventType = "employee_deleted"
	EventEmployeeRoleChanged     EventType = "employee_role_changed"
	EventEmployeePasswordChanged EventType = "employee_password_changed"
)

// Event represents a record-change event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  int64       `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// FieldChangedPayload records a single-field mutation.
type FieldChangedPayload struct {
	Field string `json:"field"`
}

// RoleChangedPayload records a role transition.
type RoleChangedPayload struct {
	OldRole string `json:"old_role"`
	NewRole string `json:"new_role"`
}
