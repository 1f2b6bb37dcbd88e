package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/emotrack/internal/db"
	"github.com/terraincognita07/emotrack/internal/models"
)

type UserRepository interface {
	List() ([]models.User, error)
	FindByID(userID string) (models.User, error)
	UpdateByID(userID string, updates map[string]any) error
	DeleteByID(userID string) error
}

type UserService struct {
	users    UserRepository
	hasher   PasswordHasher
	policy   AccessPolicy
	activity ActivityRecorder
}

func NewUserService(users UserRepository, hasher PasswordHasher, activity ActivityRecorder) *UserService {
	return &UserService{
		users:    users,
		hasher:   hasher,
		activity: normalizeActivityRecorder(activity),
	}
}

func (service *UserService) List(caller *models.User) ([]models.User, error) {
	if err := service.policy.Authorize(caller, OpListUsers, ""); err != nil {
		return nil, err
	}
	users, err := service.users.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	service.activity.Record(caller.ID, models.ActionListUsers, "")
	return users, nil
}

func (service *UserService) Get(caller *models.User, rawID string) (models.User, error) {
	userID, err := parseRecordID(rawID)
	if err != nil {
		return models.User{}, err
	}
	if err := service.policy.Authorize(caller, OpReadUser, userID); err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, translateStoreError(err, "load user")
	}
	service.activity.Record(caller.ID, models.ActionViewUser, "ID "+userID)
	return user, nil
}

// Update replaces the profile fields and password of the target identity.
func (service *UserService) Update(caller *models.User, rawID string, input UserInput) error {
	userID, err := parseRecordID(rawID)
	if err != nil {
		return err
	}
	if err := service.policy.Authorize(caller, OpUpdateUser, userID); err != nil {
		return err
	}

	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return ErrInvalidInput
	}
	passwordHash, err := service.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := service.users.UpdateByID(userID, map[string]any{
		"display_name":  strings.TrimSpace(input.Name),
		"email":         email,
		"age":           input.Age,
		"password_hash": passwordHash,
	}); err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return ErrEmailAlreadyRegistered
		}
		return translateStoreError(err, "update user")
	}
	service.activity.Record(caller.ID, models.ActionUpdateUser, "ID "+userID)
	return nil
}

func (service *UserService) Delete(caller *models.User, rawID string) error {
	userID, err := parseRecordID(rawID)
	if err != nil {
		return err
	}
	if err := service.policy.Authorize(caller, OpDeleteUser, userID); err != nil {
		return err
	}

	if err := service.users.DeleteByID(userID); err != nil {
		return translateStoreError(err, "delete user")
	}
	service.activity.Record(caller.ID, models.ActionDeleteUser, "ID "+userID)
	return nil
}

func translateStoreError(err error, operation string) error {
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", operation, err)
}
