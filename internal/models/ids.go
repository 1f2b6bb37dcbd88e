package models

import (
	"strings"

	"github.com/google/uuid"
)

func NewID() string {
	return uuid.NewString()
}

// ParseID returns the canonical form of a record id or false when the raw
// value is not a valid store identifier.
func ParseID(raw string) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func assignID(id *string) {
	if strings.TrimSpace(*id) == "" {
		*id = NewID()
	}
}
