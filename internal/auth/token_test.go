package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/scaffold-rental-service/internal/domain"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	token, expiresAt, err := tm.GenerateToken(42, domain.RoleManager)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.EmployeeID)
	assert.Equal(t, domain.RoleManager, claims.Role)
}

func TestTokenManager_ParseToken_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret1", 60)
	verifier := NewTokenManager("secret2", 60)

	token, _, err := issuer.GenerateToken(1, domain.RoleClerk)
	assert.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_ParseToken_Garbage(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)
}
