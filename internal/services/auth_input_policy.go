package services

import (
	"net/mail"
	"strings"
)

// NormalizeAuthEmail lower-cases and trims raw, returning "" when the result
// is not a bare address.
func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" || passwordRaw == "" {
		return "", "", ErrInvalidCredentials
	}
	return email, passwordRaw, nil
}
