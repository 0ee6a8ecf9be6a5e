package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRoundTrip(t *testing.T) {
	v, err := NewVerifier("test-secret")
	require.NoError(t, err)

	token, err := v.Sign("operator", nil)
	require.NoError(t, err)

	sub, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", sub)
}

func TestVerifyRejects(t *testing.T) {
	v, err := NewVerifier("test-secret")
	require.NoError(t, err)

	_, err = v.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewVerifier("other-secret")
	require.NoError(t, err)
	token, err := other.Sign("operator", nil)
	require.NoError(t, err)
	_, err = v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	v, err := NewVerifier("test-secret")
	require.NoError(t, err)

	token, err := v.Sign("operator", jwt.MapClaims{
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMissingSubject(t *testing.T) {
	v, err := NewVerifier("test-secret")
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEmptySecret(t *testing.T) {
	_, err := NewVerifier("")
	assert.Error(t, err)
}
