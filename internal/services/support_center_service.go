package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/emotrack/internal/models"
)

type SupportCenterRepository interface {
	Create(center *models.SupportCenter) error
}

type SupportCenterInput struct {
	Name    string
	Phone   string
	Address string
}

type SupportCenterService struct {
	centers  SupportCenterRepository
	policy   AccessPolicy
	activity ActivityRecorder
}

func NewSupportCenterService(centers SupportCenterRepository, activity ActivityRecorder) *SupportCenterService {
	return &SupportCenterService{
		centers:  centers,
		activity: normalizeActivityRecorder(activity),
	}
}

// Create registers a support center. Centers have no owner.
func (service *SupportCenterService) Create(caller *models.User, input SupportCenterInput) (models.SupportCenter, error) {
	if err := service.policy.Authorize(caller, OpCreateSupportCenter, ""); err != nil {
		return models.SupportCenter{}, err
	}

	center := models.SupportCenter{
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		Address: strings.TrimSpace(input.Address),
	}
	if err := service.centers.Create(&center); err != nil {
		return models.SupportCenter{}, fmt.Errorf("create support center: %w", err)
	}
	service.activity.Record(caller.ID, models.ActionCreateSupportCenter, "ID "+center.ID)
	return center, nil
}
