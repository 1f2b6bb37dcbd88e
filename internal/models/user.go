package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:text"`
	DisplayName  string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Age          int       `gorm:"not null;default:0"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

func (user *User) BeforeCreate(*gorm.DB) error {
	assignID(&user.ID)
	return nil
}
