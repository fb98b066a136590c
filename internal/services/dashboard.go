package services

import (
	"context"
	"time"

	"breaktrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const recentBreaksLimit = 10

type DashboardStats struct {
	TotalEmployees  int64
	TotalBreaks     int64
	BreaksToday     int64
	AvgBreakMinutes int64
	RecentBreaks    []models.Break
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Stats summarizes break activity. "Today" is the UTC calendar day containing now.
func (s *DashboardService) Stats(ctx context.Context, now time.Time) (*DashboardStats, error) {
	db := s.db.WithContext(ctx)
	var st DashboardStats

	if err := db.Model(&models.User{}).Where("is_admin = ?", false).Count(&st.TotalEmployees).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Break{}).Count(&st.TotalBreaks).Error; err != nil {
		return nil, err
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := db.Model(&models.Break{}).
		Where("start_time >= ? AND start_time < ?", today, dayAfter(today)).
		Count(&st.BreaksToday).Error; err != nil {
		return nil, err
	}

	var totals struct {
		Total int64
		Count int64
	}
	if err := db.Model(&models.Break{}).
		Select("COALESCE(SUM(duration), 0) AS total, COUNT(duration) AS count").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	if totals.Count > 0 {
		st.AvgBreakMinutes = decimal.NewFromInt(totals.Total).
			Div(decimal.NewFromInt(totals.Count * 60)).
			Round(0).
			IntPart()
	}

	if err := db.Preload("User").
		Order("start_time desc, id desc").
		Limit(recentBreaksLimit).
		Find(&st.RecentBreaks).Error; err != nil {
		return nil, err
	}
	return &st, nil
}
