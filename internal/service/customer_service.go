package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scaffold-rental-service/internal/domain"
	"github.com/spec-kit/scaffold-rental-service/internal/events"
	"github.com/spec-kit/scaffold-rental-service/internal/repository"
	apperrors "github.com/spec-kit/scaffold-rental-service/pkg/util"
)

// CustomerService implements the customer directory: CRUD, search,
// soft-delete and the active-customer count.
type CustomerService struct {
	customers  repository.CustomerRepository
	addresses  repository.AddressRepository
	dispatcher events.Dispatcher
}

// CustomerDependencies encapsulates what the service needs.
type CustomerDependencies struct {
	CustomerRepo repository.CustomerRepository
	AddressRepo  repository.AddressRepository
	Dispatcher   events.Dispatcher
}

// NewCustomerService constructs the service.
func NewCustomerService(deps CustomerDependencies) *CustomerService {
	return &CustomerService{
		customers:  deps.CustomerRepo,
		addresses:  deps.AddressRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Add persists the embedded address first, attaches the generated id and
// persists the customer. Both ids are populated on return.
func (s *CustomerService) Add(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := s.addresses.Save(ctx, &customer.Address); err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventCustomerCreated, customer.ID, nil)
	return customer, nil
}

// GetAll returns every customer, soft-deleted rows included.
func (s *CustomerService) GetAll(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return customers, nil
}

// GetByID returns the customer regardless of its is_deleted state.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.getCustomer(ctx, id)
}

// SoftDelete flips is_deleted on the matching row. An unknown id is a
// silent no-op and repeating the call leaves the flag true.
func (s *CustomerService) SoftDelete(ctx context.Context, id int64) error {
	affected, err := s.customers.SoftDelete(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if affected > 0 {
		s.publish(ctx, events.EventCustomerSoftDeleted, id, nil)
	}
	return nil
}

// Search returns customers whose name or nic contains the text,
// case-insensitively.
func (s *CustomerService) Search(ctx context.Context, text string) ([]domain.Customer, error) {
	customers, err := s.customers.Search(ctx, text)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return customers, nil
}

// ActiveCount reports how many customers are not soft-deleted. It loads the
// active rows and counts them; fine while the customer base stays small.
func (s *CustomerService) ActiveCount(ctx context.Context) (int, error) {
	active, err := s.customers.ListActive(ctx)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	return len(active), nil
}

// UpdateName sets the customer's name.
func (s *CustomerService) UpdateName(ctx context.Context, id int64, name string) (*domain.Customer, error) {
	return s.updateField(ctx, id, "name", func(c *domain.Customer) {
		c.Name = name
	})
}

// UpdateNic sets the customer's national id string.
func (s *CustomerService) UpdateNic(ctx context.Context, id int64, nic string) (*domain.Customer, error) {
	return s.updateField(ctx, id, "nic", func(c *domain.Customer) {
		c.NIC = nic
	})
}

// UpdateEmail sets the customer's email.
func (s *CustomerService) UpdateEmail(ctx context.Context, id int64, email string) (*domain.Customer, error) {
	return s.updateField(ctx, id, "email", func(c *domain.Customer) {
		c.Email = email
	})
}

// UpdatePhone sets the customer's phone number.
func (s *CustomerService) UpdatePhone(ctx context.Context, id int64, phone string) (*domain.Customer, error) {
	return s.updateField(ctx, id, "phone_number", func(c *domain.Customer) {
		c.PhoneNumber = phone
	})
}

// UpdateFirstDealDate sets the date of the customer's first deal.
func (s *CustomerService) UpdateFirstDealDate(ctx context.Context, id int64, date time.Time) (*domain.Customer, error) {
	return s.updateField(ctx, id, "first_date_deal", func(c *domain.Customer) {
		c.FirstDateDeal = &date
	})
}

// UpdateLastDealDate sets the date of the customer's most recent deal.
func (s *CustomerService) UpdateLastDealDate(ctx context.Context, id int64, date time.Time) (*domain.Customer, error) {
	return s.updateField(ctx, id, "last_date_deal", func(c *domain.Customer) {
		c.LastDateDeal = &date
	})
}

// UpdateAddress overwrites the fields of the customer's owned address row in
// place. The address reference never changes and no new row is created, so
// an unknown customer id leaves the addresses table untouched.
func (s *CustomerService) UpdateAddress(ctx context.Context, id int64, houseNo, street, city string) (*domain.Customer, error) {
	customer, err := s.getCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.GetByID(ctx, customer.Address.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	address.HouseNo = houseNo
	address.Street = street
	address.City = city
	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, apperrors.MapError(err)
	}

	customer.Address = *address
	s.publish(ctx, events.EventCustomerUpdated, id, events.FieldChangedPayload{Field: "address"})
	return customer, nil
}

func (s *CustomerService) updateField(ctx context.Context, id int64, field string, mutate func(*domain.Customer)) (*domain.Customer, error) {
	customer, err := s.getCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	mutate(customer)
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventCustomerUpdated, id, events.FieldChangedPayload{Field: field})
	return customer, nil
}

func (s *CustomerService) getCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return customer, nil
}

func (s *CustomerService) publish(ctx context.Context, eventType events.EventType, entityID int64, payload interface{}) {
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
