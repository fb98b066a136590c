package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"breaktrack/internal/models"

	"gorm.io/gorm"
)

type AchievementStatus struct {
	models.Achievement
	Unlocked bool
}

type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

// ListForUser returns the whole catalog, flagging what userID has unlocked.
func (s *AchievementService) ListForUser(ctx context.Context, userID uint) ([]AchievementStatus, error) {
	db := s.db.WithContext(ctx)

	var achievements []models.Achievement
	if err := db.Order("id asc").Find(&achievements).Error; err != nil {
		return nil, err
	}

	var unlockedIDs []uint
	if err := db.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &unlockedIDs).Error; err != nil {
		return nil, err
	}
	unlocked := make(map[uint]struct{}, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = struct{}{}
	}

	out := make([]AchievementStatus, 0, len(achievements))
	for _, a := range achievements {
		_, ok := unlocked[a.ID]
		out = append(out, AchievementStatus{Achievement: a, Unlocked: ok})
	}
	return out, nil
}

// Grant unlocks an achievement for a user by name. Granting twice is a no-op; the
// returned bool reports whether a row was inserted.
func (s *AchievementService) Grant(ctx context.Context, username, achievementName string) (*models.UserAchievement, bool, error) {
	var (
		ua      models.UserAchievement
		created bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			return fmt.Errorf("user %q: %w", username, translate(err))
		}
		var achievement models.Achievement
		if err := tx.Where("name = ?", achievementName).First(&achievement).Error; err != nil {
			return fmt.Errorf("achievement %q: %w", achievementName, translate(err))
		}

		err := tx.Where("user_id = ? AND achievement_id = ?", user.ID, achievement.ID).First(&ua).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		ua = models.UserAchievement{
			UserID:        user.ID,
			AchievementID: achievement.ID,
			UnlockedAt:    time.Now().UTC(),
		}
		if err := tx.Create(&ua).Error; err != nil {
			return translate(err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &ua, created, nil
}
