package security

import "golang.org/x/crypto/bcrypt"

// HashPassword generates a bcrypt digest for a plaintext password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

// BcryptVerifier checks plaintext passwords against stored digests.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
