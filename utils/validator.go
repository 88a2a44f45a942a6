// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}
	if strings.TrimSpace(password) != password {
		return false, "Password must not start or end with spaces"
	}
	return true, ""
}

// IsVideoContentType reports whether a MIME type denotes video, the only
// evidence format mission submissions accept.
func IsVideoContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "video/")
}
