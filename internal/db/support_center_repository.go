package db

import (
	"github.com/terraincognita07/emotrack/internal/models"
	"gorm.io/gorm"
)

type SupportCenterRepository struct {
	database *gorm.DB
}

func NewSupportCenterRepository(database *gorm.DB) *SupportCenterRepository {
	return &SupportCenterRepository{database: database}
}

func (repo *SupportCenterRepository) Create(center *models.SupportCenter) error {
	return repo.database.Create(center).Error
}

func (repo *SupportCenterRepository) FindByID(centerID string) (models.SupportCenter, error) {
	var center models.SupportCenter
	if err := repo.database.Where("id = ?", centerID).First(&center).Error; err != nil {
		return models.SupportCenter{}, translateLookupError(err)
	}
	return center, nil
}
