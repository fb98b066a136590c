package services

import (
	"context"
	"sort"
	"strings"

	"breaktrack/internal/database"
	"breaktrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportInput struct {
	Name        string
	Type        string
	Description string
	StartDate   string
	EndDate     string
}

// UserBreakStats aggregates one user's breaks inside a report window. Open breaks
// count towards TotalBreaks but add nothing to TotalBreakTime.
type UserBreakStats struct {
	User           models.User
	TotalBreaks    int
	TotalBreakTime int64 // seconds
	AvgBreakTime   decimal.Decimal
	Breaks         []models.Break
}

type ReportView struct {
	Report     models.Report
	Statistics []UserBreakStats
}

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) Create(ctx context.Context, creatorID uint, in ReportInput) (*models.Report, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	if in.Name == "" || in.Type == "" || in.StartDate == "" || in.EndDate == "" {
		return nil, invalid("All fields except description are required")
	}

	start, err := ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	report := models.Report{
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		ReportType:  models.ReportType(in.Type),
		StartDate:   start,
		EndDate:     end,
		CreatedBy:   &creatorID,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		return database.CreateAuditLog(tx, creatorID, "report", report.ID, "create",
			"Created report "+report.Name)
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.WithContext(ctx).
		Preload("Creator").
		Order("created_at desc, id desc").
		Find(&reports).Error
	return reports, err
}

// View computes per-user statistics for breaks started between the report's start
// date and the end of its end date, ordered by user id.
func (s *ReportService) View(ctx context.Context, id uint) (*ReportView, error) {
	var report models.Report
	if err := s.db.WithContext(ctx).Preload("Creator").First(&report, id).Error; err != nil {
		return nil, translate(err)
	}

	var breaks []models.Break
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("start_time >= ? AND start_time < ?", report.StartDate, dayAfter(report.EndDate)).
		Order("start_time asc, id asc").
		Find(&breaks).Error
	if err != nil {
		return nil, err
	}

	return &ReportView{Report: report, Statistics: aggregate(breaks)}, nil
}

func aggregate(breaks []models.Break) []UserBreakStats {
	byUser := make(map[uint]*UserBreakStats)
	for _, b := range breaks {
		st, ok := byUser[b.UserID]
		if !ok {
			st = &UserBreakStats{}
			if b.User != nil {
				st.User = *b.User
			} else {
				st.User = models.User{ID: b.UserID}
			}
			byUser[b.UserID] = st
		}
		st.TotalBreaks++
		st.TotalBreakTime += b.DurationSeconds()
		st.Breaks = append(st.Breaks, b)
	}

	stats := make([]UserBreakStats, 0, len(byUser))
	for _, st := range byUser {
		st.AvgBreakTime = decimal.NewFromInt(st.TotalBreakTime).
			Div(decimal.NewFromInt(int64(st.TotalBreaks))).
			Round(2)
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].User.ID < stats[j].User.ID })
	return stats
}
