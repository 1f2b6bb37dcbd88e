package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/emotrack/internal/models"
	"github.com/terraincognita07/emotrack/internal/services"
)

func (handler *Handler) CreateDiary(c *fiber.Ctx) error {
	payload := diaryPayload{}
	if message, ok := parseBody(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	entry, err := handler.diaryService.Create(currentUser(c), services.DiaryInput{
		UserID: payload.UserID,
		Date:   payload.Date,
		Text:   payload.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return created(c, entry.ID)
}

func (handler *Handler) ListDiaries(c *fiber.Ctx) error {
	entries, err := handler.diaryService.ListForUser(currentUser(c), c.Params("user_id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapViews(entries, func(entry models.DiaryEntry) diaryView {
		return diaryView{ID: entry.ID, UserID: entry.UserID, Date: entry.Date, Text: entry.Text}
	}))
}

func (handler *Handler) CreateEmotion(c *fiber.Ctx) error {
	payload := emotionPayload{}
	if message, ok := parseBody(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	entry, err := handler.emotionService.Create(currentUser(c), services.EmotionInput{
		UserID:    payload.UserID,
		Category:  payload.Category,
		Intensity: payload.Intensity,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return created(c, entry.ID)
}

func (handler *Handler) ListEmotions(c *fiber.Ctx) error {
	entries, err := handler.emotionService.ListForUser(currentUser(c), c.Params("user_id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapViews(entries, func(entry models.EmotionEntry) emotionView {
		return emotionView{ID: entry.ID, UserID: entry.UserID, Category: entry.Category, Intensity: entry.Intensity}
	}))
}

func (handler *Handler) CreateSupportCenter(c *fiber.Ctx) error {
	payload := supportCenterPayload{}
	if message, ok := parseBody(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	center, err := handler.supportCenterService.Create(currentUser(c), services.SupportCenterInput{
		Name:    payload.Name,
		Phone:   payload.Phone,
		Address: payload.Address,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return created(c, center.ID)
}

func (handler *Handler) CreateAssessment(c *fiber.Ctx) error {
	payload := assessmentPayload{}
	if message, ok := parseBody(c, &payload); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	assessment, err := handler.assessmentService.Create(currentUser(c), services.AssessmentInput{
		UserID:     payload.UserID,
		Evaluation: payload.Evaluation,
		Date:       payload.Date,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return created(c, assessment.ID)
}

func (handler *Handler) ListAssessments(c *fiber.Ctx) error {
	assessments, err := handler.assessmentService.ListForUser(currentUser(c), c.Params("user_id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(mapViews(assessments, func(assessment models.Assessment) assessmentView {
		return assessmentView{ID: assessment.ID, UserID: assessment.UserID, Evaluation: assessment.Evaluation, Date: assessment.Date}
	}))
}
