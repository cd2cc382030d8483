package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scaffold-rental-service/internal/domain"
)

// AddressRepository handles persistence for owned address rows.
type AddressRepository interface {
	Save(ctx context.Context, address *domain.Address) error
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
}

type addressRepository struct {
	db DB
}

// NewAddressRepository instantiates the repository.
func NewAddressRepository(db DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Save(ctx context.Context, address *domain.Address) error {
	const query = `
        INSERT INTO addresses (house_no, street, city)
        VALUES ($1,$2,$3)
        RETURNING id`

	return r.db.QueryRow(ctx, query,
		address.HouseNo,
		address.Street,
		address.City,
	).Scan(&address.ID)
}

func (r *addressRepository) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	const query = `
        SELECT id, house_no, street, city
        FROM addresses WHERE id=$1`

	var address domain.Address
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&address.ID,
		&address.HouseNo,
		&address.Street,
		&address.City,
	); err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) Update(ctx context.Context, address *domain.Address) error {
	const query = `
        UPDATE addresses SET house_no=$1, street=$2, city=$3
        WHERE id=$4`

	cmd, err := r.db.Exec(ctx, query,
		address.HouseNo,
		address.Street,
		address.City,
		address.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
