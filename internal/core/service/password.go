package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword checks the shared password policy for student and
// administrator registration. Rules are evaluated in a fixed order and the
// first violation is returned.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return &domain.ValidationError{Rule: "length", Message: "must be at least 8 characters long"}
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(passwordSymbols, r) {
			hasSymbol = true
		}
	}

	if !hasUpper {
		return &domain.ValidationError{Rule: "uppercase", Message: "must contain at least one uppercase letter"}
	}
	if !hasLower {
		return &domain.ValidationError{Rule: "lowercase", Message: "must contain at least one lowercase letter"}
	}
	if !hasDigit {
		return &domain.ValidationError{Rule: "digit", Message: "must contain at least one digit"}
	}
	if !hasSymbol {
		return &domain.ValidationError{Rule: "symbol", Message: "must contain at least one special character"}
	}
	return nil
}
