package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters uniformly from alphabet using crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errNegativeLength
	case length == 0:
		return "", nil
	case alphabet == "":
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for index := range out {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[index] = alphabet[position.Int64()]
	}
	return string(out), nil
}

// TemporaryPassword returns an operator-issued password without look-alike characters.
func TemporaryPassword(length int) (string, error) {
	if length < MinPasswordLength {
		length = MinPasswordLength
	}
	return RandomString(length, temporaryPasswordAlphabet)
}
