package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. 10 rounds keeps login latency
// acceptable while staying expensive enough for offline attacks.
const hashCost = 10

// HashPassword hashes a password using bcrypt. Each call salts independently,
// so hashing the same plaintext twice yields different stored values.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against a stored bcrypt hash.
// Malformed hashes are treated as a mismatch, never an error.
func CheckPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
