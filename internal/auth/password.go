package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns bcrypt.ErrPasswordTooLong for inputs over 72 bytes.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
