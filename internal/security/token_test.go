package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mindmate/internal/security"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := security.NewTokenService("test-secret", time.Hour)

	token, err := svc.CreateForUser(security.SessionClaims{
		UserID:   "42",
		Username: "alice",
		Email:    "alice@example.com",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	svc := security.NewTokenService("secret-a", time.Hour)
	other := security.NewTokenService("secret-b", time.Hour)

	token, err := svc.CreateForUser(security.SessionClaims{UserID: "1"})
	assert.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	svc := security.NewTokenService("secret", -time.Minute)

	token, err := svc.CreateForUser(security.SessionClaims{UserID: "1"})
	assert.NoError(t, err)

	_, err = svc.Parse(token)
	assert.Error(t, err)
}

func TestPasswordHasher(t *testing.T) {
	h := security.NewPasswordHasher(4)

	hash, err := h.Hash("Password1!")
	assert.NoError(t, err)
	assert.NotEqual(t, "Password1!", hash)

	assert.NoError(t, h.Verify("Password1!", hash))
	assert.Error(t, h.Verify("wrong", hash))
}
