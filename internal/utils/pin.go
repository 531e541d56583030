package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PINHasher prepares PINs for storage and checks candidates against the
// stored form. The zero value stores PINs in clear text.
type PINHasher struct {
	Hash bool
}

// Seal returns the value to persist in the pin column.
func (h PINHasher) Seal(pin string) (string, error) {
	if !h.Hash {
		return pin, nil
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(bytes), err
}

// Match checks a candidate PIN against the stored value.
func (h PINHasher) Match(candidate, stored string) bool {
	if !h.Hash {
		return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
