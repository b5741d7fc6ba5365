package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 7 * 24 * 60,
		Issuer:     "kormo",
	}
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateToken("user-1", "01712345678", "admin", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 7 day expiry
	assert.InDelta(t, time.Now().Add(7*24*time.Hour).Unix(), expiresAt, 5)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["id"])
	assert.Equal(t, "01712345678", claims["phone"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "kormo", claims["iss"])
}

func TestGenerateToken_EmptyRoleDefaultsToCustomer(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken("user-1", "01712345678", "", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "customer", claims["role"])
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""

	_, _, err := GenerateToken("user-1", "01712345678", "customer", cfg)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken("user-1", "01712345678", "customer", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -1

	token, _, err := GenerateToken("user-1", "01712345678", "customer", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}
