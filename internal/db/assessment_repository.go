package db

import (
	"github.com/terraincognita07/emotrack/internal/models"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	database *gorm.DB
}

func NewAssessmentRepository(database *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{database: database}
}

func (repo *AssessmentRepository) Create(assessment *models.Assessment) error {
	return repo.database.Create(assessment).Error
}

func (repo *AssessmentRepository) ListByUser(userID string) ([]models.Assessment, error) {
	assessments := make([]models.Assessment, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}
