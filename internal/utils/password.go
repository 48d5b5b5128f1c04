package utils

import (
	"fmt"
	"unicode/utf8"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength applies to password changes and administrative resets.
const MinPasswordLength = 6

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordLength rejects passwords shorter than MinPasswordLength characters.
func ValidatePasswordLength(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", apperrors.ErrValidation, MinPasswordLength)
	}
	return nil
}
