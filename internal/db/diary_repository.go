package db

import (
	"github.com/terraincognita07/emotrack/internal/models"
	"gorm.io/gorm"
)

type DiaryRepository struct {
	database *gorm.DB
}

func NewDiaryRepository(database *gorm.DB) *DiaryRepository {
	return &DiaryRepository{database: database}
}

func (repo *DiaryRepository) Create(entry *models.DiaryEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *DiaryRepository) ListByUser(userID string) ([]models.DiaryEntry, error) {
	entries := make([]models.DiaryEntry, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
