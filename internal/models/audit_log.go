package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint // acting admin
	User   User `gorm:"constraint:OnDelete:CASCADE"`

	Entity   string `gorm:"size:50;not null"` // "employee", "report", "break"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "update", "delete"
	Details  string `gorm:"type:text"`
}
