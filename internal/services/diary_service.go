package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/emotrack/internal/models"
)

type DiaryRepository interface {
	Create(entry *models.DiaryEntry) error
	ListByUser(userID string) ([]models.DiaryEntry, error)
}

type DiaryInput struct {
	UserID string
	Date   string
	Text   string
}

type DiaryService struct {
	diaries  DiaryRepository
	policy   AccessPolicy
	activity ActivityRecorder
}

func NewDiaryService(diaries DiaryRepository, activity ActivityRecorder) *DiaryService {
	return &DiaryService{
		diaries:  diaries,
		activity: normalizeActivityRecorder(activity),
	}
}

// Create stores a diary entry; callers may only write their own diary.
func (service *DiaryService) Create(caller *models.User, input DiaryInput) (models.DiaryEntry, error) {
	ownerID := strings.TrimSpace(input.UserID)
	if err := service.policy.Authorize(caller, OpCreateDiary, ownerID); err != nil {
		return models.DiaryEntry{}, err
	}

	entry := models.DiaryEntry{
		UserID: ownerID,
		Date:   strings.TrimSpace(input.Date),
		Text:   input.Text,
	}
	if err := service.diaries.Create(&entry); err != nil {
		return models.DiaryEntry{}, fmt.Errorf("create diary: %w", err)
	}
	service.activity.Record(caller.ID, models.ActionCreateDiary, "ID "+entry.ID)
	return entry, nil
}

func (service *DiaryService) ListForUser(caller *models.User, userID string) ([]models.DiaryEntry, error) {
	if err := service.policy.Authorize(caller, OpListDiaries, strings.TrimSpace(userID)); err != nil {
		return nil, err
	}

	entries, err := service.diaries.ListByUser(caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list diaries: %w", err)
	}
	service.activity.Record(caller.ID, models.ActionListDiaries, "")
	return entries, nil
}
