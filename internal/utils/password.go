package utils

import "golang.org/x/crypto/bcrypt"

// passwordHashCost is the bcrypt work factor for stored credentials. Raising
// it rehashes passwords transparently on next login only if callers compare
// and re-store; until then it applies to new registrations.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword derives a bcrypt hash suitable for storage from a plaintext
// password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the stored
// bcrypt hash. Any comparison failure, malformed hash included, reads as a
// mismatch.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
