package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Diaries        *DiaryRepository
	Emotions       *EmotionRepository
	SupportCenters *SupportCenterRepository
	Assessments    *AssessmentRepository
	ActivityLogs   *ActivityLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Diaries:        NewDiaryRepository(database),
		Emotions:       NewEmotionRepository(database),
		SupportCenters: NewSupportCenterRepository(database),
		Assessments:    NewAssessmentRepository(database),
		ActivityLogs:   NewActivityLogRepository(database),
	}
}
