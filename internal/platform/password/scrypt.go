// Package password derives and verifies salted password hashes.
//
// Encoded values have the form "<salt>.<hash>", both lowercase hex. The salt
// is 8 random bytes and the hash is a 32-byte scrypt key derived from the
// password and the salt string.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltBytes = 8
	keyLength = 32

	// scrypt cost parameters
	costN = 1 << 14
	costR = 8
	costP = 1

	separator = "."
)

// ErrMalformedHash is returned when an encoded value is not a "<salt>.<hash>" pair.
var ErrMalformedHash = errors.New("malformed password hash")

// ScryptHasher implements salted hashing with scrypt.
type ScryptHasher struct {
	rand func([]byte) (int, error)
}

// NewScryptHasher returns a hasher that reads salts from crypto/rand.
func NewScryptHasher() *ScryptHasher {
	return &ScryptHasher{rand: rand.Read}
}

// Hash returns "<salt>.<hash>" for the given password using a fresh salt.
func (h *ScryptHasher) Hash(password string) (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := h.rand(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(buf)

	key, err := derive(password, salt)
	if err != nil {
		return "", err
	}
	return salt + separator + hex.EncodeToString(key), nil
}

// Verify reports whether password matches the encoded value.
func (h *ScryptHasher) Verify(password, encoded string) (bool, error) {
	salt, storedHash, ok := strings.Cut(encoded, separator)
	if !ok || salt == "" || storedHash == "" {
		return false, ErrMalformedHash
	}

	want, err := hex.DecodeString(storedHash)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	got, err := derive(password, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func derive(password, salt string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), costN, costR, costP, keyLength)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}
