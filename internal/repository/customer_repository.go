package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scaffold-rental-service/internal/domain"
)

// CustomerRepository handles persistence for customers. Deletion is always
// logical: nothing here removes a customer row.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	ListActive(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, text string) ([]domain.Customer, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)
}

const customerColumns = `
        c.id, c.nic, c.name, c.first_date_deal, c.last_date_deal,
        c.email, c.phone_number, c.is_deleted,
        a.id, a.house_no, a.street, a.city`

const customerFrom = `
        FROM customers c
        JOIN addresses a ON a.id = c.address_id`

type customerRepository struct {
	db DB
}

// NewCustomerRepository instantiates the repository.
func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (nic, name, address_id, first_date_deal, last_date_deal, email, phone_number, is_deleted)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id`

	return r.db.QueryRow(ctx, query,
		customer.NIC,
		customer.Name,
		customer.Address.ID,
		customer.FirstDateDeal,
		customer.LastDateDeal,
		customer.Email,
		customer.PhoneNumber,
		customer.IsDeleted,
	).Scan(&customer.ID)
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
        UPDATE customers
        SET nic=$1, name=$2, first_date_deal=$3, last_date_deal=$4, email=$5, phone_number=$6, is_deleted=$7
        WHERE id=$8`

	cmd, err := r.db.Exec(ctx, query,
		customer.NIC,
		customer.Name,
		customer.FirstDateDeal,
		customer.LastDateDeal,
		customer.Email,
		customer.PhoneNumber,
		customer.IsDeleted,
		customer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT` + customerColumns + customerFrom + ` WHERE c.id=$1`

	var customer domain.Customer
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.NIC,
		&customer.Name,
		&customer.FirstDateDeal,
		&customer.LastDateDeal,
		&customer.Email,
		&customer.PhoneNumber,
		&customer.IsDeleted,
		&customer.Address.ID,
		&customer.Address.HouseNo,
		&customer.Address.Street,
		&customer.Address.City,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}

// List returns every customer, soft-deleted ones included.
func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT` + customerColumns + customerFrom + ` ORDER BY c.id`
	return r.queryCustomers(ctx, query)
}

// ListActive returns only customers whose is_deleted flag is false.
func (r *customerRepository) ListActive(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT` + customerColumns + customerFrom + ` WHERE c.is_deleted=FALSE ORDER BY c.id`
	return r.queryCustomers(ctx, query)
}

// Search matches text against name or nic, case-insensitively.
func (r *customerRepository) Search(ctx context.Context, text string) ([]domain.Customer, error) {
	query := `SELECT` + customerColumns + customerFrom + `
        WHERE c.name ILIKE '%' || $1 || '%' OR c.nic ILIKE '%' || $1 || '%'
        ORDER BY c.id`
	return r.queryCustomers(ctx, query, text)
}

// SoftDelete flips is_deleted in a single update and reports how many rows
// it touched. Zero rows is not an error: the operation is a no-op for
// unknown ids and idempotent for known ones.
func (r *customerRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	const query = `UPDATE customers SET is_deleted=TRUE WHERE id=$1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *customerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.NIC,
			&customer.Name,
			&customer.FirstDateDeal,
			&customer.LastDateDeal,
			&customer.Email,
			&customer.PhoneNumber,
			&customer.IsDeleted,
			&customer.Address.ID,
			&customer.Address.HouseNo,
			&customer.Address.Street,
			&customer.Address.City,
		); err != nil {
			return nil, err
		}
		result = append(result, customer)
	}
	return result, rows.Err()
}
