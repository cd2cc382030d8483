package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/scaffold-rental-service/internal/domain"
)

// In-memory repository fakes backing the service tests.

type fakeAddressRepo struct {
	nextID int64
	rows   map[int64]domain.Address
	saves  int
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{rows: make(map[int64]domain.Address)}
}

func (f *fakeAddressRepo) Save(_ context.Context, address *domain.Address) error {
	f.nextID++
	address.ID = f.nextID
	f.rows[address.ID] = *address
	f.saves++
	return nil
}

func (f *fakeAddressRepo) GetByID(_ context.Context, id int64) (*domain.Address, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := row
	return &copied, nil
}

func (f *fakeAddressRepo) Update(_ context.Context, address *domain.Address) error {
	if _, ok := f.rows[address.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.rows[address.ID] = *address
	return nil
}

type fakeCustomerRepo struct {
	nextID int64
	order  []int64
	rows   map[int64]domain.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{rows: make(map[int64]domain.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	f.nextID++
	customer.ID = f.nextID
	f.rows[customer.ID] = *customer
	f.order = append(f.order, customer.ID)
	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, ok := f.rows[customer.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.rows[customer.ID] = *customer
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := row
	return &copied, nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	result := make([]domain.Customer, 0, len(f.order))
	for _, id := range f.order {
		result = append(result, f.rows[id])
	}
	return result, nil
}

func (f *fakeCustomerRepo) ListActive(ctx context.Context) ([]domain.Customer, error) {
	all, _ := f.List(ctx)
	var active []domain.Customer
	for _, customer := range all {
		if !customer.IsDeleted {
			active = append(active, customer)
		}
	}
	return active, nil
}

func (f *fakeCustomerRepo) Search(ctx context.Context, text string) ([]domain.Customer, error) {
	needle := strings.ToLower(text)
	all, _ := f.List(ctx)
	var matched []domain.Customer
	for _, customer := range all {
		if strings.Contains(strings.ToLower(customer.Name), needle) ||
			strings.Contains(strings.ToLower(customer.NIC), needle) {
			matched = append(matched, customer)
		}
	}
	return matched, nil
}

func (f *fakeCustomerRepo) SoftDelete(_ context.Context, id int64) (int64, error) {
	row, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	row.IsDeleted = true
	f.rows[id] = row
	return 1, nil
}

type fakeEmployeeRepo struct {
	nextID int64
	order  []int64
	rows   map[int64]domain.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{rows: make(map[int64]domain.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	for _, existing := range f.rows {
		if existing.Username == employee.Username {
			return &pgconn.PgError{Code: "23505", ConstraintName: "employees_username_key"}
		}
	}
	f.nextID++
	employee.ID = f.nextID
	f.rows[employee.ID] = *employee
	f.order = append(f.order, employee.ID)
	return nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	if _, ok := f.rows[employee.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.rows[employee.ID] = *employee
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := row
	return &copied, nil
}

func (f *fakeEmployeeRepo) GetByUsername(_ context.Context, username string) (*domain.Employee, error) {
	for _, row := range f.rows {
		if row.Username == username {
			copied := row
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	result := make([]domain.Employee, 0, len(f.order))
	for _, id := range f.order {
		result = append(result, f.rows[id])
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Search(ctx context.Context, text string) ([]domain.Employee, error) {
	needle := strings.ToLower(text)
	all, _ := f.List(ctx)
	var matched []domain.Employee
	for _, employee := range all {
		if strings.Contains(strings.ToLower(employee.Name), needle) ||
			strings.Contains(strings.ToLower(employee.NIC), needle) {
			matched = append(matched, employee)
		}
	}
	return matched, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.rows, id)
	for i, ordered := range f.order {
		if ordered == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}
