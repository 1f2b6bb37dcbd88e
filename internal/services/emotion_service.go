package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/emotrack/internal/models"
)

type EmotionRepository interface {
	Create(entry *models.EmotionEntry) error
	ListByUser(userID string) ([]models.EmotionEntry, error)
}

type EmotionInput struct {
	UserID    string
	Category  string
	Intensity int
}

type EmotionService struct {
	emotions EmotionRepository
	policy   AccessPolicy
	activity ActivityRecorder
}

func NewEmotionService(emotions EmotionRepository, activity ActivityRecorder) *EmotionService {
	return &EmotionService{
		emotions: emotions,
		activity: normalizeActivityRecorder(activity),
	}
}

// Create does not tie input.UserID to the caller; any authenticated identity
// may log an emotion for any user id.
func (service *EmotionService) Create(caller *models.User, input EmotionInput) (models.EmotionEntry, error) {
	ownerID := strings.TrimSpace(input.UserID)
	if err := service.policy.Authorize(caller, OpCreateEmotion, ownerID); err != nil {
		return models.EmotionEntry{}, err
	}
	if input.Intensity < models.MinEmotionIntensity || input.Intensity > models.MaxEmotionIntensity {
		return models.EmotionEntry{}, ErrInvalidInput
	}

	entry := models.EmotionEntry{
		UserID:    ownerID,
		Category:  strings.TrimSpace(input.Category),
		Intensity: input.Intensity,
	}
	if err := service.emotions.Create(&entry); err != nil {
		return models.EmotionEntry{}, fmt.Errorf("create emotion: %w", err)
	}
	service.activity.Record(caller.ID, models.ActionCreateEmotion, "ID "+entry.ID)
	return entry, nil
}

func (service *EmotionService) ListForUser(caller *models.User, userID string) ([]models.EmotionEntry, error) {
	if err := service.policy.Authorize(caller, OpListEmotions, strings.TrimSpace(userID)); err != nil {
		return nil, err
	}

	entries, err := service.emotions.ListByUser(caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list emotions: %w", err)
	}
	service.activity.Record(caller.ID, models.ActionListEmotions, "")
	return entries, nil
}
