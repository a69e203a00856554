package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRandomToken returns a URL-safe opaque token for activation,
// password-reset and refresh credentials.
func GenerateRandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// EncodeUID encodes a user id for embedding in emailed links.
func EncodeUID(userID string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(userID))
}

// DecodeUID reverses EncodeUID. Padding is tolerated so links produced
// by other encoders still decode.
func DecodeUID(uid string) (string, error) {
	trimmed := uid
	for len(trimmed) > 0 && trimmed[len(trimmed)-1] == '=' {
		trimmed = trimmed[:len(trimmed)-1]
	}
	raw, err := base64.RawURLEncoding.DecodeString(trimmed)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
