package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("secret1", hash))
	assert.False(t, utils.CheckPasswordHash("secret2", hash))
	assert.False(t, utils.CheckPasswordHash("secret1", ""))
}

func TestJWTRoundTrip(t *testing.T) {
	token, expiresAt, err := utils.GenerateJWT("user-1", "test-secret", time.Hour, "test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "test", claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestExpiredJWTRejected(t *testing.T) {
	token, _, err := utils.GenerateJWT("user-1", "test-secret", -time.Minute, "test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestNewRefreshToken(t *testing.T) {
	raw, hash, err := utils.NewRefreshToken()
	require.NoError(t, err)

	assert.Len(t, raw, 64)
	assert.True(t, utils.CompareRefreshTokenHash(raw, hash))
	assert.False(t, utils.CompareRefreshTokenHash(raw+"x", hash))
	assert.False(t, utils.CompareRefreshTokenHash(raw, ""))
}

func TestPosthogWrapper_ZeroValueIsInert(t *testing.T) {
	var w *utils.PosthogClientWrapper
	assert.False(t, w.IsInitialized())
	w.Enqueue("u", "e", nil)
	w.Close()

	w = &utils.PosthogClientWrapper{}
	assert.False(t, w.IsInitialized())
	w.Enqueue("u", "e", nil)
}
