package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/emotrack/internal/models"
)

type AssessmentRepository interface {
	Create(assessment *models.Assessment) error
	ListByUser(userID string) ([]models.Assessment, error)
}

type AssessmentInput struct {
	UserID     string
	Evaluation string
	Date       string
}

type AssessmentService struct {
	assessments AssessmentRepository
	policy      AccessPolicy
	activity    ActivityRecorder
}

func NewAssessmentService(assessments AssessmentRepository, activity ActivityRecorder) *AssessmentService {
	return &AssessmentService{
		assessments: assessments,
		activity:    normalizeActivityRecorder(activity),
	}
}

func (service *AssessmentService) Create(caller *models.User, input AssessmentInput) (models.Assessment, error) {
	ownerID := strings.TrimSpace(input.UserID)
	if err := service.policy.Authorize(caller, OpCreateAssessment, ownerID); err != nil {
		return models.Assessment{}, err
	}

	assessment := models.Assessment{
		UserID:     ownerID,
		Evaluation: input.Evaluation,
		Date:       strings.TrimSpace(input.Date),
	}
	if err := service.assessments.Create(&assessment); err != nil {
		return models.Assessment{}, fmt.Errorf("create assessment: %w", err)
	}
	service.activity.Record(caller.ID, models.ActionCreateAssessment, "ID "+assessment.ID)
	return assessment, nil
}

func (service *AssessmentService) ListForUser(caller *models.User, userID string) ([]models.Assessment, error) {
	if err := service.policy.Authorize(caller, OpListAssessments, strings.TrimSpace(userID)); err != nil {
		return nil, err
	}

	assessments, err := service.assessments.ListByUser(caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	service.activity.Record(caller.ID, models.ActionListAssessments, "")
	return assessments, nil
}
