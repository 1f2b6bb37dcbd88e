package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultTokenTTL = 60 * time.Minute

var (
	ErrTokenInvalid         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	ErrEmptySigningSecret   = errors.New("signing secret must not be empty")
	ErrEmptyTokenSubject    = errors.New("token subject must not be empty")
)

// TokenService issues and verifies self-contained bearer tokens. It keeps no
// server-side state, so a token stays valid until it expires.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// SigningMethod resolves an HMAC algorithm name such as HS256.
func SigningMethod(name string) (jwt.SigningMethod, error) {
	method := jwt.GetSigningMethod(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return method, nil
}

func NewTokenService(secret []byte, algorithm string, ttl time.Duration) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySigningSecret
	}
	method, err := SigningMethod(algorithm)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: secret,
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (service *TokenService) TTL() time.Duration {
	return service.ttl
}

func (service *TokenService) Algorithm() string {
	return service.method.Alg()
}

func (service *TokenService) Issue(subject string) (string, error) {
	return service.IssueWithTTL(subject, service.ttl)
}

// IssueWithTTL signs a token expiring at now+ttl. A non-positive ttl yields a
// token that is already expired.
func (service *TokenService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", ErrEmptyTokenSubject
	}
	now := service.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(service.method, claims).SignedString(service.secret)
}

// Verify returns the token subject. Expiry is reported as ErrTokenExpired and
// every other defect as ErrTokenInvalid.
func (service *TokenService) Verify(rawToken string) (string, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return "", ErrTokenInvalid
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(*jwt.Token) (interface{}, error) {
		return service.secret, nil
	},
		jwt.WithValidMethods([]string{service.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
