package services

import (
	"context"
	"fmt"
	"time"

	"breaktrack/internal/database"
	"breaktrack/internal/models"

	"gorm.io/gorm"
)

// BreakFilter narrows the admin break listing. To is an inclusive calendar date.
type BreakFilter struct {
	UserID *uint
	From   *time.Time
	To     *time.Time
}

type BreakService struct {
	db *gorm.DB
}

func NewBreakService(db *gorm.DB) *BreakService {
	return &BreakService{db: db}
}

// Start records a new break for userID. When end is given the break is stored closed.
func (s *BreakService) Start(ctx context.Context, userID uint, start time.Time, end *time.Time) (*models.Break, error) {
	b := models.Break{UserID: userID, StartTime: start}
	if end != nil {
		if err := b.Close(*end); err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, fmt.Errorf("create break: %w", err)
	}
	return &b, nil
}

// Stop closes a break owned by p. A nil end leaves the break untouched.
func (s *BreakService) Stop(ctx context.Context, p models.Principal, id uint, end *time.Time) (*models.Break, error) {
	var b models.Break
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			return translate(err)
		}
		if b.UserID != p.PrincipalID() {
			return ErrForbidden
		}
		if end == nil {
			return nil
		}
		if err := b.Close(*end); err != nil {
			return err
		}
		return tx.Model(&b).Select("end_time", "duration").Updates(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BreakService) ListForUser(ctx context.Context, userID uint) ([]models.Break, error) {
	var breaks []models.Break
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time asc, id asc").
		Find(&breaks).Error
	return breaks, err
}

// Delete removes a break owned by p, or any break when p is an admin.
func (s *BreakService) Delete(ctx context.Context, p models.Principal, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Break
		if err := tx.First(&b, id).Error; err != nil {
			return translate(err)
		}

		owner := b.UserID == p.PrincipalID()
		if !owner && !p.IsAdministrator() {
			return ErrForbidden
		}
		if err := tx.Delete(&b).Error; err != nil {
			return fmt.Errorf("delete break: %w", err)
		}
		if owner {
			return nil
		}
		return database.CreateAuditLog(tx, p.PrincipalID(), "break", b.ID, "delete",
			fmt.Sprintf("Deleted break of user %d started %s", b.UserID, FormatTimestamp(b.StartTime)))
	})
}

// Browse lists breaks of all users, newest start first.
func (s *BreakService) Browse(ctx context.Context, f BreakFilter) ([]models.Break, error) {
	q := s.db.WithContext(ctx).Preload("User")
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.From != nil {
		q = q.Where("start_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("start_time < ?", dayAfter(*f.To))
	}

	var breaks []models.Break
	err := q.Order("start_time desc, id desc").Find(&breaks).Error
	return breaks, err
}
