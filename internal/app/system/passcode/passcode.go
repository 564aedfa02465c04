// internal/app/system/passcode/passcode.go

// Package passcode generates and verifies leader passcodes. Plaintext
// passcodes leave the process exactly once (the registration response);
// only bcrypt hashes are stored.
package passcode

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// DefaultLength is the passcode length used when config does not
// override it.
const DefaultLength = 12

// charset matches what leaders are used to typing on phones: mixed-case
// letters, digits, and a few symbols.
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$"

// Generate returns a random passcode of n characters. n values below 1
// fall back to DefaultLength.
func Generate(n int) (string, error) {
	if n < 1 {
		n = DefaultLength
	}
	max := big.NewInt(int64(len(charset)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = charset[idx.Int64()]
	}
	return string(b), nil
}

// Hash returns the bcrypt hash to store for a plaintext passcode.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored hash.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
