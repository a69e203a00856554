package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	raw, err := GenerateToken("user-123", true, false)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := ParseToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user-123", claims.Subject)
	assert.True(t, claims.IsStaff)
	assert.False(t, claims.IsSuperuser)
}

func TestParseTokenExpired(t *testing.T) {
	raw, err := GenerateTokenWithTTL("user-123", false, false, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(raw)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenTamperedSignature(t *testing.T) {
	raw, err := GenerateToken("user-123", false, false)
	require.NoError(t, err)

	_, err = ParseToken(raw + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
