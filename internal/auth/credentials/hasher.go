package credentials

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Work factor for new hashes. Matches bcrypt.DefaultCost.
const hashCost = 10

// Hash computes a salted one-way digest of the password.
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("credentials: hash: %w", err)
	}
	return string(bytes), nil
}

// Verify compares a plaintext password with a stored hash. A mismatch
// is (false, nil); an error means the stored hash is malformed.
func Verify(hash string, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("credentials: compare: %w", err)
}
