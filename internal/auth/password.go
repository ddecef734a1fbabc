package auth

import (
	"unicode"
	"unicode/utf8"
)

// ValidatePassword reports whether a password is acceptable for signup:
// at least 8 characters with an uppercase letter, a lowercase letter, a
// digit and a symbol. Login never calls this.
func ValidatePassword(password string) bool {
	// Characters, not bytes: multibyte runes count once.
	if utf8.RuneCountInString(password) < 8 {
		return false
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
		case !unicode.IsLetter(r) && !unicode.IsNumber(r):
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}
