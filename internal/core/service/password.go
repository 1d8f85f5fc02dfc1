package service

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of the plaintext. The digest embeds
// the algorithm identifier, cost and a per-call salt.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored digest. The
// comparison is constant-time, and a malformed digest verifies false rather
// than erroring out.
func CheckPassword(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
