package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scaffold-rental-service/internal/auth"
	"github.com/spec-kit/scaffold-rental-service/internal/config"
	"github.com/spec-kit/scaffold-rental-service/internal/domain"
	"github.com/spec-kit/scaffold-rental-service/internal/events"
	"github.com/spec-kit/scaffold-rental-service/internal/repository"
	apperrors "github.com/spec-kit/scaffold-rental-service/pkg/util"
)

// EmployeeService implements the employee directory: CRUD, search, role
// normalization, credential handling and login.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	addresses  repository.AddressRepository
	dispatcher events.Dispatcher
	tokens     *auth.TokenManager
	bcryptCost int
}

// EmployeeDependencies encapsulates what the service needs.
type EmployeeDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	AddressRepo  repository.AddressRepository
	Dispatcher   events.Dispatcher
	TokenManager *auth.TokenManager
}

// NewEmployeeService constructs the service.
func NewEmployeeService(cfg config.Config, deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{
		employees:  deps.EmployeeRepo,
		addresses:  deps.AddressRepo,
		dispatcher: deps.Dispatcher,
		tokens:     deps.TokenManager,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Add persists the employee's address, hashes the supplied plaintext with a
// fresh salt and persists the employee. Only the hash is ever stored; a
// duplicate username surfaces as a conflict from the unique constraint.
func (s *EmployeeService) Add(ctx context.Context, employee *domain.Employee, plaintext string) (*domain.Employee, error) {
	if err := s.addresses.Save(ctx, &employee.Address); err != nil {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(plaintext, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	employee.PasswordHash = hash

	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventEmployeeCreated, employee.ID, nil)
	return employee, nil
}

// GetAll returns every employee.
func (s *EmployeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return employees, nil
}

// GetByID returns the matching employee.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.getEmployee(ctx, id)
}

// Delete hard-deletes the employee row. The owned address row stays.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventEmployeeDeleted, id, nil)
	return nil
}

// Search returns employees whose name or nic contains the text,
// case-insensitively.
func (s *EmployeeService) Search(ctx context.Context, text string) ([]domain.Employee, error) {
	employees, err := s.employees.Search(ctx, text)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return employees, nil
}

// UpdateRole maps the input to one of the fixed roles, case-insensitively.
// Unmappable input fails loudly and leaves the stored role untouched.
func (s *EmployeeService) UpdateRole(ctx context.Context, id int64, roleText string) (*domain.Employee, error) {
	employee, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	role, err := domain.ParseEmployeeRole(roleText)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid employee role", map[string]any{"role": roleText})
	}

	oldRole := employee.Role
	employee.Role = role
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventEmployeeRoleChanged, id, events.RoleChangedPayload{
		OldRole: string(oldRole),
		NewRole: string(role),
	})
	return employee, nil
}

// UpdatePassword re-hashes the plaintext with a freshly generated salt and
// persists only the hash.
func (s *EmployeeService) UpdatePassword(ctx context.Context, id int64, plaintext string) (*domain.Employee, error) {
	employee, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(plaintext, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	employee.PasswordHash = hash
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventEmployeePasswordChanged, id, nil)
	return employee, nil
}

// UpdateName sets the employee's name.
func (s *EmployeeService) UpdateName(ctx context.Context, id int64, name string) (*domain.Employee, error) {
	return s.updateField(ctx, id, "name", func(e *domain.Employee) {
		e.Name = name
	})
}

// UpdateNic sets the employee's national id string.
func (s *EmployeeService) UpdateNic(ctx context.Context, id int64, nic string) (*domain.Employee, error) {
	return s.updateField(ctx, id, "nic", func(e *domain.Employee) {
		e.NIC = nic
	})
}

// UpdateEmail sets the employee's email.
func (s *EmployeeService) UpdateEmail(ctx context.Context, id int64, email string) (*domain.Employee, error) {
	return s.updateField(ctx, id, "email", func(e *domain.Employee) {
		e.Email = email
	})
}

// UpdatePhone sets the employee's phone number.
func (s *EmployeeService) UpdatePhone(ctx context.Context, id int64, phone string) (*domain.Employee, error) {
	return s.updateField(ctx, id, "phone_number", func(e *domain.Employee) {
		e.PhoneNumber = phone
	})
}

// UpdateAddress overwrites the fields of the employee's owned address row in
// place; the reference never changes and no new row is created.
func (s *EmployeeService) UpdateAddress(ctx context.Context, id int64, houseNo, street, city string) (*domain.Employee, error) {
	employee, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.GetByID(ctx, employee.Address.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	address.HouseNo = houseNo
	address.Street = street
	address.City = city
	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, apperrors.MapError(err)
	}

	employee.Address = *address
	s.publish(ctx, events.EventEmployeeUpdated, id, events.FieldChangedPayload{Field: "address"})
	return employee, nil
}

// Login verifies the username/password pair and issues a signed token.
func (s *EmployeeService) Login(ctx context.Context, username, password string) (*domain.Employee, string, time.Time, error) {
	employee, err := s.employees.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	if err := auth.ComparePassword(employee.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokens.GenerateToken(employee.ID, employee.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return employee, token, expiresAt, nil
}

func (s *EmployeeService) updateField(ctx context.Context, id int64, field string, mutate func(*domain.Employee)) (*domain.Employee, error) {
	employee, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	mutate(employee)
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventEmployeeUpdated, id, events.FieldChangedPayload{Field: field})
	return employee, nil
}

func (s *EmployeeService) getEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return employee, nil
}

func (s *EmployeeService) publish(ctx context.Context, eventType events.EventType, entityID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
