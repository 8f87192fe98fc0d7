package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_IssueAndVerify(t *testing.T) {
	provider := NewProvider([]byte("test-secret"), time.Hour)

	token, err := provider.IssueToken(42, "client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := provider.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID())
	assert.Equal(t, "client", claims.Role)
}

func TestProvider_VerifyToken_Expired(t *testing.T) {
	provider := NewProvider([]byte("test-secret"), -time.Minute)

	token, err := provider.IssueToken(42, "client")
	require.NoError(t, err)

	_, err = provider.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestProvider_VerifyToken_WrongSecret(t *testing.T) {
	issuer := NewProvider([]byte("secret-a"), time.Hour)
	verifier := NewProvider([]byte("secret-b"), time.Hour)

	token, err := issuer.IssueToken(42, "client")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestProvider_VerifyToken_Garbage(t *testing.T) {
	provider := NewProvider([]byte("test-secret"), time.Hour)

	_, err := provider.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_UserID_Malformed(t *testing.T) {
	claims := &Claims{}
	assert.Equal(t, int64(0), claims.UserID())

	claims.Subject = "not-a-number"
	assert.Equal(t, int64(0), claims.UserID())
}
