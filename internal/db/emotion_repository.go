package db

import (
	"github.com/terraincognita07/emotrack/internal/models"
	"gorm.io/gorm"
)

type EmotionRepository struct {
	database *gorm.DB
}

func NewEmotionRepository(database *gorm.DB) *EmotionRepository {
	return &EmotionRepository{database: database}
}

func (repo *EmotionRepository) Create(entry *models.EmotionEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *EmotionRepository) ListByUser(userID string) ([]models.EmotionEntry, error) {
	entries := make([]models.EmotionEntry, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
