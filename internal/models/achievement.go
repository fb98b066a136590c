package models

import "time"

type Achievement struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:255"`
	Points      int    `gorm:"not null;default:0"`
	Icon        string `gorm:"size:50"` // bootstrap-icons class
}

// UserAchievement records an unlock. A user holds each achievement at most once.
type UserAchievement struct {
	ID            uint `gorm:"primaryKey"`
	UserID        uint `gorm:"uniqueIndex:idx_user_achievement;not null"`
	AchievementID uint `gorm:"uniqueIndex:idx_user_achievement;not null"`
	Achievement   *Achievement
	UnlockedAt    time.Time
}
