package services

import (
	"log"
	"time"

	"github.com/terraincognita07/emotrack/internal/models"
)

type ActivityLogRepository interface {
	Append(entry *models.ActivityLog) error
}

// ActivityRecorder is the audit side channel every mutating or listing
// operation reports to.
type ActivityRecorder interface {
	Record(actorID string, action string, details string)
}

type ActivityObserver interface {
	ObserveActivity(action string, persisted bool)
}

// ActivityService is best-effort: a failed audit write is logged and
// counted, never returned to the operation that triggered it.
type ActivityService struct {
	logs     ActivityLogRepository
	observer ActivityObserver
	now      func() time.Time
}

func NewActivityService(logs ActivityLogRepository, observer ActivityObserver) *ActivityService {
	return &ActivityService{
		logs:     logs,
		observer: observer,
		now:      time.Now,
	}
}

func (service *ActivityService) Record(actorID string, action string, details string) {
	entry := models.ActivityLog{
		UserID:     actorID,
		Action:     action,
		Details:    details,
		OccurredAt: service.now().UTC(),
	}

	err := service.logs.Append(&entry)
	if err != nil {
		log.Printf("activity log write failed (user=%s action=%s): %v", actorID, action, err)
	}
	if service.observer != nil {
		service.observer.ObserveActivity(action, err == nil)
	}
}

type noopActivityRecorder struct{}

func (noopActivityRecorder) Record(string, string, string) {}

func normalizeActivityRecorder(recorder ActivityRecorder) ActivityRecorder {
	if recorder == nil {
		return noopActivityRecorder{}
	}
	return recorder
}
