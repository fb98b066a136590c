// Package services holds the break-tracking operations. Handlers call these instead
// of touching gorm directly; each mutating call runs in its own transaction.
package services

import "gorm.io/gorm"

type Services struct {
	Auth         *AuthService
	Employees    *EmployeeService
	Breaks       *BreakService
	Reports      *ReportService
	Achievements *AchievementService
	Dashboard    *DashboardService
	Audit        *AuditService
}

func New(db *gorm.DB) *Services {
	return &Services{
		Auth:         NewAuthService(db),
		Employees:    NewEmployeeService(db),
		Breaks:       NewBreakService(db),
		Reports:      NewReportService(db),
		Achievements: NewAchievementService(db),
		Dashboard:    NewDashboardService(db),
		Audit:        NewAuditService(db),
	}
}
