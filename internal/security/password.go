package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MaxPasswordBytes is the bcrypt input limit; longer input is truncated
	// identically on hash and verify.
	MaxPasswordBytes  = 72
	MinPasswordLength = 6
)

var ErrEmptyPassword = errors.New("password must not be empty")

type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (hasher *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword(truncatePassword(plaintext), hasher.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (hasher *PasswordHasher) Verify(plaintext string, digest string) bool {
	if plaintext == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), truncatePassword(plaintext)) == nil
}

func truncatePassword(plaintext string) []byte {
	raw := []byte(plaintext)
	if len(raw) > MaxPasswordBytes {
		raw = raw[:MaxPasswordBytes]
	}
	return raw
}
