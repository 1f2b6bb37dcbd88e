package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/emotrack/internal/db"
	"github.com/terraincognita07/emotrack/internal/models"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID string, passwordHash string) error
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
}

type TokenIssuer interface {
	Issue(subject string) (string, error)
	Verify(rawToken string) (string, error)
}

type UserInput struct {
	Name     string
	Email    string
	Age      int
	Password string
}

type AuthService struct {
	users    AuthUserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	activity ActivityRecorder
	now      func() time.Time
}

func NewAuthService(users AuthUserRepository, hasher PasswordHasher, tokens TokenIssuer, activity ActivityRecorder) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		activity: normalizeActivityRecorder(activity),
		now:      time.Now,
	}
}

// Register stores a new identity. It does not authenticate the caller.
func (service *AuthService) Register(input UserInput) (models.User, error) {
	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return models.User{}, ErrInvalidInput
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailAlreadyRegistered
	}

	passwordHash, err := service.hasher.Hash(input.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		DisplayName:  strings.TrimSpace(input.Name),
		Email:        email,
		Age:          input.Age,
		PasswordHash: passwordHash,
		CreatedAt:    service.now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	service.activity.Record(user.ID, models.ActionRegisterUser, fmt.Sprintf("user %s registered", user.Email))
	return user, nil
}

// Login verifies credentials and returns a bearer token bound to the email.
func (service *AuthService) Login(emailRaw string, password string) (string, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, password)
	if err != nil {
		return "", err
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("load user: %w", err)
	}
	if !service.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := service.tokens.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	service.activity.Record(user.ID, models.ActionLogin, fmt.Sprintf("user %s logged in", user.Email))
	return token, nil
}

// ResolveCurrentIdentity runs on every authenticated request. A valid token
// whose subject no longer exists is rejected like any other bad token.
func (service *AuthService) ResolveCurrentIdentity(rawToken string) (models.User, error) {
	subject, err := service.tokens.Verify(rawToken)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := service.users.FindByNormalizedEmail(subject)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.User{}, fmt.Errorf("%w: identity %s no longer exists", ErrUnauthorized, subject)
		}
		return models.User{}, fmt.Errorf("load identity: %w", err)
	}
	return user, nil
}

// ResetPassword replaces the password of the identity registered under
// emailRaw. Issued tokens stay valid until they expire.
func (service *AuthService) ResetPassword(emailRaw string, newPassword string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}

	passwordHash, err := service.hasher.Hash(newPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	if err := service.users.UpdatePassword(user.ID, passwordHash); err != nil {
		return models.User{}, fmt.Errorf("update password: %w", err)
	}
	user.PasswordHash = passwordHash

	service.activity.Record(user.ID, models.ActionResetPassword, fmt.Sprintf("password of %s reset by operator", user.Email))
	return user, nil
}
