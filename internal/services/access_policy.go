package services

import (
	"strings"

	"github.com/terraincognita07/emotrack/internal/models"
)

type Operation string

const (
	OpReadSelf            Operation = "read_self"
	OpListUsers           Operation = "list_users"
	OpReadUser            Operation = "read_user"
	OpUpdateUser          Operation = "update_user"
	OpDeleteUser          Operation = "delete_user"
	OpCreateDiary         Operation = "create_diary"
	OpListDiaries         Operation = "list_diaries"
	OpCreateEmotion       Operation = "create_emotion"
	OpListEmotions        Operation = "list_emotions"
	OpCreateSupportCenter Operation = "create_support_center"
	OpCreateAssessment    Operation = "create_assessment"
	OpListAssessments     Operation = "list_assessments"
)

type accessRule int

const (
	ruleAnyAuthenticated accessRule = iota + 1
	ruleOwnerOnly
)

// Identity-targeted user operations are open to every authenticated caller,
// as is creating emotions on behalf of any user_id.
var accessRules = map[Operation]accessRule{
	OpReadSelf:            ruleAnyAuthenticated,
	OpListUsers:           ruleAnyAuthenticated,
	OpReadUser:            ruleAnyAuthenticated,
	OpUpdateUser:          ruleAnyAuthenticated,
	OpDeleteUser:          ruleAnyAuthenticated,
	OpCreateDiary:         ruleOwnerOnly,
	OpListDiaries:         ruleOwnerOnly,
	OpCreateEmotion:       ruleAnyAuthenticated,
	OpListEmotions:        ruleOwnerOnly,
	OpCreateSupportCenter: ruleAnyAuthenticated,
	OpCreateAssessment:    ruleAnyAuthenticated,
	OpListAssessments:     ruleOwnerOnly,
}

type AccessPolicy struct{}

// Authorize evaluates op for caller against the owning identity of the target
// resource. ownerID is ignored by rules without an ownership requirement.
func (AccessPolicy) Authorize(caller *models.User, op Operation, ownerID string) error {
	if caller == nil || strings.TrimSpace(caller.ID) == "" {
		return ErrUnauthorized
	}

	switch accessRules[op] {
	case ruleAnyAuthenticated:
		return nil
	case ruleOwnerOnly:
		if ownerID != caller.ID {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}

func RequiresOwnership(op Operation) bool {
	return accessRules[op] == ruleOwnerOnly
}
