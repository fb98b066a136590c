package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"breaktrack/internal/database"
	"breaktrack/internal/models"

	"gorm.io/gorm"
)

type EmployeeInput struct {
	Username string
	Email    string
	Password string
}

func (in *EmployeeInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
}

type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

// List returns every non-admin user.
func (s *EmployeeService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("is_admin = ?", false).
		Order("username asc").
		Find(&users).Error
	return users, err
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Create adds a non-admin user with the employee role.
func (s *EmployeeService) Create(ctx context.Context, actorID uint, in EmployeeInput) (*models.User, error) {
	in.normalize()
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, invalid("All fields are required")
	}

	var created models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkUnique(tx, in, 0); err != nil {
			return err
		}

		var role models.Role
		if err := tx.Where("name = ?", models.RoleEmployee).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		hash, err := hashPassword(in.Password)
		if err != nil {
			return err
		}

		created = models.User{
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
			IsAdmin:      false,
			RoleID:       &role.ID,
		}
		if err := tx.Create(&created).Error; err != nil {
			return translate(err)
		}

		return database.CreateAuditLog(tx, actorID, "employee", created.ID, "create",
			"Created employee "+created.Username)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update changes username and email and, when a new one is given, the password.
func (s *EmployeeService) Update(ctx context.Context, actorID, id uint, in EmployeeInput) (*models.User, error) {
	in.normalize()
	if in.Username == "" || in.Email == "" {
		return nil, invalid("Username and email are required")
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return translate(err)
		}
		if err := checkUnique(tx, in, id); err != nil {
			return err
		}

		user.Username = in.Username
		user.Email = in.Email
		if in.Password != "" {
			hash, err := hashPassword(in.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}

		if err := tx.Save(&user).Error; err != nil {
			return translate(err)
		}
		return database.CreateAuditLog(tx, actorID, "employee", user.ID, "update",
			"Updated employee "+user.Username)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a non-admin user together with their breaks and unlocked
// achievements. Reports they created are kept with no creator.
func (s *EmployeeService) Delete(ctx context.Context, actorID, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return translate(err)
		}
		if user.IsAdmin {
			return ErrAdminProtected
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Break{}).Error; err != nil {
			return fmt.Errorf("delete breaks: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserAchievement{}).Error; err != nil {
			return fmt.Errorf("delete user achievements: %w", err)
		}
		if err := tx.Model(&models.Report{}).Where("created_by = ?", id).
			Update("created_by", nil).Error; err != nil {
			return fmt.Errorf("detach reports: %w", err)
		}
		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}

		return database.CreateAuditLog(tx, actorID, "employee", id, "delete",
			"Deleted employee "+user.Username)
	})
}

// checkUnique rejects a username or email held by a user other than exceptID.
func checkUnique(tx *gorm.DB, in EmployeeInput, exceptID uint) error {
	var count int64
	if err := tx.Model(&models.User{}).
		Where("username = ? AND id <> ?", in.Username, exceptID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUsername
	}

	if err := tx.Model(&models.User{}).
		Where("email = ? AND id <> ?", in.Email, exceptID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmail
	}
	return nil
}
