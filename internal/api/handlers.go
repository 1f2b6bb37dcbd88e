package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/emotrack/internal/db"
	"github.com/terraincognita07/emotrack/internal/security"
	"github.com/terraincognita07/emotrack/internal/services"
	"gorm.io/gorm"
)

type LoginObserver interface {
	ObserveLogin(outcome string)
}

type Options struct {
	SecretKey        string
	Algorithm        string
	TokenTTL         time.Duration
	BcryptCost       int
	ActivityObserver services.ActivityObserver
	LoginObserver    LoginObserver
}

type Handler struct {
	authService          *services.AuthService
	userService          *services.UserService
	diaryService         *services.DiaryService
	emotionService       *services.EmotionService
	supportCenterService *services.SupportCenterService
	assessmentService    *services.AssessmentService
	loginObserver        LoginObserver
	loginLimiter         *attemptLimiter
	now                  func() time.Time
}

func NewHandler(database *gorm.DB, options Options) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}

	tokens, err := security.NewTokenService([]byte(options.SecretKey), options.Algorithm, options.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}
	hasher := security.NewPasswordHasher(options.BcryptCost)

	repositories := db.NewRepositories(database)
	activity := services.NewActivityService(repositories.ActivityLogs, options.ActivityObserver)

	return &Handler{
		authService:          services.NewAuthService(repositories.Users, hasher, tokens, activity),
		userService:          services.NewUserService(repositories.Users, hasher, activity),
		diaryService:         services.NewDiaryService(repositories.Diaries, activity),
		emotionService:       services.NewEmotionService(repositories.Emotions, activity),
		supportCenterService: services.NewSupportCenterService(repositories.SupportCenters, activity),
		assessmentService:    services.NewAssessmentService(repositories.Assessments, activity),
		loginObserver:        options.LoginObserver,
		loginLimiter:         newAttemptLimiter(loginFailureLimit, loginFailureWindow),
		now:                  time.Now,
	}, nil
}

func (handler *Handler) observeLogin(outcome string) {
	if handler.loginObserver != nil {
		handler.loginObserver.ObserveLogin(outcome)
	}
}
