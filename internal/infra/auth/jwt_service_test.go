package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Reset = "test_reset_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateResetToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateResetToken(userID, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, resetTokenType, claims.Type)
}

func TestJWTService_ExpiredResetToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, _, err := svc.GenerateResetToken(uuid.New(), time.Hour)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	claims, err := svc.ValidateResetToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSecretAndGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"typ": resetTokenType,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateResetToken(foreign)
	assert.Error(t, err)

	_, err = svc.ValidateResetToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, svc.HashToken("abc"), svc.HashToken("abc"))
	assert.NotEqual(t, svc.HashToken("abc"), svc.HashToken("abd"))
	assert.Len(t, svc.HashToken("abc"), 64)
}
