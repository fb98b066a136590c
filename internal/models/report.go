package models

import "time"

type ReportType string

const (
	ReportIndividual ReportType = "individual"
	ReportTeam       ReportType = "team"
	ReportDepartment ReportType = "department"
)

type Report struct {
	ID          uint       `gorm:"primaryKey"`
	Name        string     `gorm:"size:100;not null"`
	Description string     `gorm:"size:255"`
	StartDate   time.Time  `gorm:"not null"`
	EndDate     time.Time  `gorm:"not null"`
	CreatedBy   *uint      // nil once the creator is deleted
	Creator     *User      `gorm:"foreignKey:CreatedBy"`
	ReportType  ReportType `gorm:"size:50"`
	CreatedAt   time.Time
}
