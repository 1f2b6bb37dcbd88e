package db

import (
	"github.com/terraincognita07/emotrack/internal/models"
	"gorm.io/gorm"
)

type ActivityLogRepository struct {
	database *gorm.DB
}

func NewActivityLogRepository(database *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{database: database}
}

func (repo *ActivityLogRepository) Append(entry *models.ActivityLog) error {
	return repo.database.Create(entry).Error
}
