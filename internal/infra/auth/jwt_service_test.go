package auth

import (
	"testing"

	"freshmarket/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID, []string{"ADMIN"})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	token, err := svc.ValidateToken(access, "access-secret")
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])

	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Contains(t, roles, "ADMIN")
}

func TestJWTService_RefreshTokenCarriesNoRoles(t *testing.T) {
	svc := newTestTokenService(t)

	_, refresh, err := svc.GenerateTokens(uuid.New(), []string{"USER"})
	require.NoError(t, err)

	token, err := svc.ValidateToken(refresh, "refresh-secret")
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "refresh", claims["type"])
	_, hasRoles := claims["roles"]
	assert.False(t, hasRoles)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	access, _, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access, "not-the-secret")
	require.Error(t, err)
}
