package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scaffold-rental-service/internal/domain"
)

// EmployeeRepository handles persistence for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByUsername(ctx context.Context, username string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Search(ctx context.Context, text string) ([]domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

const employeeColumns = `
        e.id, e.nic, e.name, e.phone_number, e.email, e.role, e.username, e.password_hash,
        a.id, a.house_no, a.street, a.city`

const employeeFrom = `
        FROM employees e
        JOIN addresses a ON a.id = e.address_id`

type employeeRepository struct {
	db DB
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(db DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (nic, name, phone_number, email, address_id, role, username, password_hash)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id`

	return r.db.QueryRow(ctx, query,
		employee.NIC,
		employee.Name,
		employee.PhoneNumber,
		employee.Email,
		employee.Address.ID,
		employee.Role,
		employee.Username,
		employee.PasswordHash,
	).Scan(&employee.ID)
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	const query = `
        UPDATE employees
        SET nic=$1, name=$2, phone_number=$3, email=$4, role=$5, username=$6, password_hash=$7
        WHERE id=$8`

	cmd, err := r.db.Exec(ctx, query,
		employee.NIC,
		employee.Name,
		employee.PhoneNumber,
		employee.Email,
		employee.Role,
		employee.Username,
		employee.PasswordHash,
		employee.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `SELECT` + employeeColumns + employeeFrom + ` WHERE e.id=$1`
	return r.queryEmployee(ctx, query, id)
}

func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	query := `SELECT` + employeeColumns + employeeFrom + ` WHERE e.username=$1`
	return r.queryEmployee(ctx, query, username)
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT` + employeeColumns + employeeFrom + ` ORDER BY e.id`
	return r.queryEmployees(ctx, query)
}

// Search matches text against name or nic, case-insensitively.
func (r *employeeRepository) Search(ctx context.Context, text string) ([]domain.Employee, error) {
	query := `SELECT` + employeeColumns + employeeFrom + `
        WHERE e.name ILIKE '%' || $1 || '%' OR e.nic ILIKE '%' || $1 || '%'
        ORDER BY e.id`
	return r.queryEmployees(ctx, query, text)
}

// Delete removes the employee row. The owned address row stays behind.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM employees WHERE id=$1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) queryEmployee(ctx context.Context, query string, arg any) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&employee.ID,
		&employee.NIC,
		&employee.Name,
		&employee.PhoneNumber,
		&employee.Email,
		&employee.Role,
		&employee.Username,
		&employee.PasswordHash,
		&employee.Address.ID,
		&employee.Address.HouseNo,
		&employee.Address.Street,
		&employee.Address.City,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.NIC,
			&employee.Name,
			&employee.PhoneNumber,
			&employee.Email,
			&employee.Role,
			&employee.Username,
			&employee.PasswordHash,
			&employee.Address.ID,
			&employee.Address.HouseNo,
			&employee.Address.Street,
			&employee.Address.City,
		); err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}
