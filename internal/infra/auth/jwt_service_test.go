package auth

import (
	"testing"
	"time"

	"localguide/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret, issuer string) *config.Config {
	cfg := &config.Config{
		Session: &config.SessionConfig{Issuer: issuer, TTL: time.Hour},
	}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing", "localguide"))
	require.NoError(t, err)

	token, err := svc.IssueSessionToken("user-1", "ada@example.com", "Ada")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, time.Hour, svc.GetSessionDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing", ""))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-one-secret-one-secret-one", ""))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two-secret-two-secret-two", ""))
	require.NoError(t, err)

	token, err := issuer.IssueSessionToken("user-1", "", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongIssuer(t *testing.T) {
	secret := "shared-secret-shared-secret-shared"
	issuer, err := NewJWTService(newTestConfig(secret, "someone-else"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig(secret, "localguide"))
	require.NoError(t, err)

	token, err := issuer.IssueSessionToken("user-1", "", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "shared-secret-shared-secret-shared"
	svc, err := NewJWTService(newTestConfig(secret, ""))
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "session secret must be provided")
}
