package services

import (
	"errors"

	"github.com/terraincognita07/emotrack/internal/models"
)

var (
	ErrInvalidID              = errors.New("invalid id")
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("incorrect email or password")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("access denied")
	ErrNotFound               = errors.New("not found")
)

func parseRecordID(raw string) (string, error) {
	id, ok := models.ParseID(raw)
	if !ok {
		return "", ErrInvalidID
	}
	return id, nil
}
