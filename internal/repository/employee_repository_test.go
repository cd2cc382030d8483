package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/scaffold-rental-service/internal/domain"
)

func newEmployeeRepo(t *testing.T) (EmployeeRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewEmployeeRepository(mock), mock
}

func employeeRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "nic", "name", "phone_number", "email", "role", "username", "password_hash",
		"address_id", "house_no", "street", "city",
	})
}

func TestEmployeeRepository_Create_AssignsID(t *testing.T) {
	repo, mock := newEmployeeRepo(t)

	employee := &domain.Employee{
		NIC:          "881234567V",
		Name:         "Nimal Perera",
		PhoneNumber:  "0777654321",
		Email:        "nimal@example.com",
		Address:      domain.Address{ID: 4},
		Role:         domain.RoleClerk,
		Username:     "nimal",
		PasswordHash: "$2a$10$hash",
	}

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs("881234567V", "Nimal Perera", "0777654321", "nimal@example.com", int64(4), domain.RoleClerk, "nimal", "$2a$10$hash").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

	err := repo.Create(context.Background(), employee)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), employee.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByUsername(t *testing.T) {
	repo, mock := newEmployeeRepo(t)

	rows := employeeRows().
		AddRow(int64(9), "881", "Nimal Perera", "077", "nimal@example.com",
			domain.RoleClerk, "nimal", "$2a$10$hash",
			int64(4), "3", "C St", "Colombo")
	mock.ExpectQuery("FROM employees e").WithArgs("nimal").WillReturnRows(rows)

	employee, err := repo.GetByUsername(context.Background(), "nimal")
	assert.NoError(t, err)
	assert.Equal(t, int64(9), employee.ID)
	assert.Equal(t, domain.RoleClerk, employee.Role)
	assert.Equal(t, "Colombo", employee.Address.City)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete(t *testing.T) {
	repo, mock := newEmployeeRepo(t)

	mock.ExpectExec("DELETE FROM employees").
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete_MissingRow(t *testing.T) {
	repo, mock := newEmployeeRepo(t)

	mock.ExpectExec("DELETE FROM employees").
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
