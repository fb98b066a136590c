package database

import (
	"context"
	"errors"
	"fmt"

	"breaktrack/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@example.com"
)

var defaultAchievements = []models.Achievement{
	{Name: "Break Beginner", Description: "Take your first break", Points: 10, Icon: "bi-award"},
	{Name: "Break Regular", Description: "Take breaks for 5 consecutive days", Points: 20, Icon: "bi-calendar-check"},
	{Name: "Break Master", Description: "Maintain optimal break patterns for 2 weeks", Points: 50, Icon: "bi-trophy"},
	{Name: "Perfect Timer", Description: "End 10 breaks at exactly the optimal duration", Points: 30, Icon: "bi-clock-history"},
	{Name: "Team Player", Description: "Encourage 3 team members to take regular breaks", Points: 25, Icon: "bi-people"},
}

// Seed inserts the roles, the default admin and the achievement catalog. Every row is
// guarded by an existence check, so running it again changes nothing.
func Seed(ctx context.Context, db *gorm.DB, adminPassword string, log *zap.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		adminRole, err := ensureRole(tx, models.RoleAdmin, log)
		if err != nil {
			return err
		}
		if _, err := ensureRole(tx, models.RoleEmployee, log); err != nil {
			return err
		}
		if err := ensureAdmin(tx, adminRole, adminPassword, log); err != nil {
			return err
		}
		return ensureAchievements(tx, log)
	})
}

func ensureRole(tx *gorm.DB, name string, log *zap.Logger) (*models.Role, error) {
	var role models.Role
	err := tx.Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check role %s: %w", name, err)
	}

	role = models.Role{Name: name}
	if err := tx.Create(&role).Error; err != nil {
		return nil, fmt.Errorf("create role %s: %w", name, err)
	}
	log.Info("created role", zap.String("role", name))
	return &role, nil
}

func ensureAdmin(tx *gorm.DB, adminRole *models.Role, password string, log *zap.Logger) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := models.User{
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
		RoleID:       &adminRole.ID,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}
	log.Warn("created default admin user, change its password", zap.String("username", admin.Username))
	return nil
}

func ensureAchievements(tx *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := tx.Model(&models.Achievement{}).Count(&count).Error; err != nil {
		return fmt.Errorf("check achievements: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := make([]models.Achievement, len(defaultAchievements))
	copy(rows, defaultAchievements)
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("create achievements: %w", err)
	}
	log.Info("seeded achievements", zap.Int("count", len(rows)))
	return nil
}
