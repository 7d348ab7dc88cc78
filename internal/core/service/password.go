package service

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

// Key derivation parameters. Changing any of these breaks verification of
// every stored credential, so they are fixed.
const (
	pbkdf2Iterations = 50_000
	pbkdf2KeyLength  = 64
	saltLength       = 16
)

// HashPassword derives a storable credential from a plaintext password.
// Format: <salt_hex>:<derived_key_hex>.
func HashPassword(plain string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)

	key := pbkdf2.Key([]byte(plain), []byte(saltHex), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	return saltHex + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword reports whether plain matches the stored salt:key pair.
// A stored value that does not split into exactly two parts fails with
// domain.ErrMalformedCredential.
func VerifyPassword(plain, stored string) (bool, error) {
	parts := strings.Split(stored, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false, domain.ErrMalformedCredential
	}

	expected, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, domain.ErrMalformedCredential
	}

	key := pbkdf2.Key([]byte(plain), []byte(parts[0]), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)
	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}
