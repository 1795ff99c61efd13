package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/uta-gremial/reclamos-service/internal/auth"
	"github.com/uta-gremial/reclamos-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.GenerateToken("user-123", domain.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestTokenDefaultTTLIsSevenDays(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 0)

	_, expiresAt, err := tm.GenerateToken("user-123", domain.RoleSubmitter)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("secret-one", time.Hour)
	other := auth.NewTokenManager("secret-two", time.Hour)

	token, _, err := tm.GenerateToken("user-123", domain.RoleSubmitter)
	assert.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Millisecond)

	token, _, err := tm.GenerateToken("user-123", domain.RoleSubmitter)
	assert.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	_, err := tm.ParseToken("not-a-jwt")
	assert.Error(t, err)
}

func TestPasswordHashAndCompare(t *testing.T) {
	hashed, err := auth.HashPassword("claveSegura123", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NotEqual(t, "claveSegura123", hashed)

	assert.NoError(t, auth.ComparePassword(hashed, "claveSegura123"))
	assert.Error(t, auth.ComparePassword(hashed, "otraClave"))
}
