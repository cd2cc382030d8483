package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/scaffold-rental-service/internal/domain"
)

func newCustomerRepo(t *testing.T) (CustomerRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewCustomerRepository(mock), mock
}

func customerRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "nic", "name", "first_date_deal", "last_date_deal",
		"email", "phone_number", "is_deleted",
		"address_id", "house_no", "street", "city",
	})
}

func TestCustomerRepository_Create_AssignsID(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	customer := &domain.Customer{
		NIC:         "991234567V",
		Name:        "Ali Khan",
		Address:     domain.Address{ID: 7, HouseNo: "12", Street: "High St", City: "Kandy"},
		Email:       "ali@example.com",
		PhoneNumber: "0771234567",
	}

	mock.ExpectQuery("INSERT INTO customers").
		WithArgs("991234567V", "Ali Khan", int64(7), (*time.Time)(nil), (*time.Time)(nil), "ali@example.com", "0771234567", false).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	err := repo.Create(context.Background(), customer)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), customer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_GetByID_NoRows(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectQuery("FROM customers c").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_SoftDelete_ZeroRowsIsNoError(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectExec("UPDATE customers SET is_deleted=TRUE").
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	affected, err := repo.SoftDelete(context.Background(), 99)
	assert.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_SoftDelete_ReportsAffectedRows(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectExec("UPDATE customers SET is_deleted=TRUE").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	affected, err := repo.SoftDelete(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_List_IncludesSoftDeleted(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	rows := customerRows().
		AddRow(int64(1), "991", "Ali Khan", (*time.Time)(nil), (*time.Time)(nil), "", "", false,
			int64(10), "1", "A St", "Kandy").
		AddRow(int64(2), "992", "Sam Ali", (*time.Time)(nil), (*time.Time)(nil), "", "", true,
			int64(11), "2", "B St", "Galle")
	mock.ExpectQuery("FROM customers c").WillReturnRows(rows)

	customers, err := repo.List(context.Background())
	assert.NoError(t, err)
	require.Len(t, customers, 2)
	assert.False(t, customers[0].IsDeleted)
	assert.True(t, customers[1].IsDeleted)
	assert.Equal(t, "A St", customers[0].Address.Street)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Search_PassesText(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	rows := customerRows().
		AddRow(int64(1), "991", "Ali Khan", (*time.Time)(nil), (*time.Time)(nil), "", "", false,
			int64(10), "1", "A St", "Kandy")
	mock.ExpectQuery("ILIKE").WithArgs("ali").WillReturnRows(rows)

	customers, err := repo.Search(context.Background(), "ali")
	assert.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ali Khan", customers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Update_NoRowsIsNotFound(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	customer := &domain.Customer{ID: 42, Name: "Ali Khan"}
	mock.ExpectExec("UPDATE customers").
		WithArgs("", "Ali Khan", (*time.Time)(nil), (*time.Time)(nil), "", "", false, int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), customer)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
