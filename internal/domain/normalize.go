package domain

import (
	"strings"
)

// NormalizeEmail lowercases and trims an email address. Client rows are
// unique on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeAccessCode trims and uppercases a submitted or stored access code.
func NormalizeAccessCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
