// Package security provides password hashing and verification.
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor applied to every new password hash.
const hashCost = 10

// HashPassword returns a one-way salted hash of the given plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword checks the plaintext against a stored hash. A mismatch is
// reported as (false, nil); an error is returned only when the hash itself
// cannot be processed.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
