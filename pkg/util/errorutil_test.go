package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError_NoRowsBecomesNotFound(t *testing.T) {
	domainErr := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestToDomainError_UniqueViolationBecomesConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "employees_username_key"}
	domainErr := ToDomainError(pgErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, http.StatusConflict, domainErr.HTTPStatus)
	assert.Equal(t, "employees_username_key", domainErr.Details["constraint"])
}

func TestToDomainError_PassesThroughDomainErrors(t *testing.T) {
	original := NewNotFound("customer", map[string]any{"id": int64(7)})
	domainErr := ToDomainError(original)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, int64(7), domainErr.Details["id"])
}

func TestToDomainError_WrapsUnknownErrors(t *testing.T) {
	domainErr := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("employee", nil)))
	assert.False(t, IsNotFound(NewValidationError("bad role", nil)))
	assert.False(t, IsNotFound(nil))
}
