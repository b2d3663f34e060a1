package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()
	issuer := NewTokenIssuer("test_secret")

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()
	token, err := NewTokenIssuer("secret-a").Issue(7)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()
	secret := "test_secret"
	claims := jwt.MapClaims{
		"sub": "7",
		"iss": "devconnector-api",
		"aud": "devconnector-client",
		"exp": time.Now().Add(-time.Minute).Unix(),
		"iat": time.Now().Add(-25 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenIssuer(secret).Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()
	_, err := NewTokenIssuer("test_secret").Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()
	secret := "test_secret"
	claims := jwt.MapClaims{
		"sub": "7",
		"iss": "someone-else",
		"aud": "devconnector-client",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenIssuer(secret).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiresInOneDay(t *testing.T) {
	t.Parallel()
	issuer := NewTokenIssuer("test_secret")
	before := time.Now()

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)

	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(TokenTTL), exp.Time, 5*time.Second)
}
