package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkim-dev/budget_tracker_app/internal/utils"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, time.Hour, "budget-tracker")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "budget-tracker", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, time.Hour, "budget-tracker")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "some-other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, -time.Minute, "budget-tracker")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	claims, err := utils.ParseAndValidateJWT("not-a-token", testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
