package db

import (
	"github.com/terraincognita07/emotrack/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) Create(user *models.User) error {
	if err := repo.database.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.User{}, translateLookupError(err)
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, translateLookupError(err)
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) List() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateByID applies updates only when a row with userID exists; a missing
// row is reported as ErrNotFound rather than a silent no-op.
func (repo *UserRepository) UpdateByID(userID string, updates map[string]any) error {
	result := repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrDuplicateEmail
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *UserRepository) UpdatePassword(userID string, passwordHash string) error {
	return repo.UpdateByID(userID, map[string]any{"password_hash": passwordHash})
}

func (repo *UserRepository) DeleteByID(userID string) error {
	result := repo.database.Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
