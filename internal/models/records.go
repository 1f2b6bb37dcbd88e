package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MinEmotionIntensity = 1
	MaxEmotionIntensity = 10
)

type DiaryEntry struct {
	ID        string `gorm:"primaryKey;type:text"`
	UserID    string `gorm:"not null;index"`
	Date      string `gorm:"not null"`
	Text      string `gorm:"not null"`
	CreatedAt time.Time
}

func (DiaryEntry) TableName() string {
	return "diaries"
}

func (entry *DiaryEntry) BeforeCreate(*gorm.DB) error {
	assignID(&entry.ID)
	return nil
}

type EmotionEntry struct {
	ID        string `gorm:"primaryKey;type:text"`
	UserID    string `gorm:"not null;index"`
	Category  string `gorm:"not null"`
	Intensity int    `gorm:"not null"`
	CreatedAt time.Time
}

func (EmotionEntry) TableName() string {
	return "emotions"
}

func (entry *EmotionEntry) BeforeCreate(*gorm.DB) error {
	assignID(&entry.ID)
	return nil
}

type SupportCenter struct {
	ID        string `gorm:"primaryKey;type:text"`
	Name      string `gorm:"not null"`
	Phone     string `gorm:"not null"`
	Address   string `gorm:"not null"`
	CreatedAt time.Time
}

func (center *SupportCenter) BeforeCreate(*gorm.DB) error {
	assignID(&center.ID)
	return nil
}

type Assessment struct {
	ID         string `gorm:"primaryKey;type:text"`
	UserID     string `gorm:"not null;index"`
	Evaluation string `gorm:"not null"`
	Date       string `gorm:"not null"`
	CreatedAt  time.Time
}

func (assessment *Assessment) BeforeCreate(*gorm.DB) error {
	assignID(&assessment.ID)
	return nil
}
