package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("secret", time.Hour)
	userID := uuid.New()

	token, expiresAt, err := m.GenerateAccessToken(userID, "a@example.com", "Alice", "admin")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := NewManager("secret-one", time.Hour).GenerateAccessToken(uuid.New(), "a@example.com", "Alice", "user")
	require.NoError(t, err)

	_, err = NewManager("secret-two", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	token, _, err := m.GenerateAccessToken(uuid.New(), "a@example.com", "Alice", "user")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
