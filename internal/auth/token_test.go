package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIDRoundTrip(t *testing.T) {
	uid := EncodeUID("3f2b8c1d-1111-2222-3333-444455556666")
	assert.NotContains(t, uid, "=")

	decoded, err := DecodeUID(uid)
	require.NoError(t, err)
	assert.Equal(t, "3f2b8c1d-1111-2222-3333-444455556666", decoded)
}

func TestDecodeUIDToleratesPadding(t *testing.T) {
	decoded, err := DecodeUID(EncodeUID("abc") + "=")
	require.NoError(t, err)
	assert.Equal(t, "abc", decoded)
}

func TestDecodeUIDRejectsGarbage(t *testing.T) {
	_, err := DecodeUID("%%%not-base64%%%")
	assert.Error(t, err)
}

func TestGenerateRandomTokenIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := GenerateRandomToken()
		assert.NotEmpty(t, token)
		assert.False(t, seen[token], "tokens must not repeat")
		seen[token] = true
	}
}
