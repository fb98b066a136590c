// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"breaktrack/internal/database"
	"breaktrack/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const AdminPassword = "admin123"

// NewDB returns a migrated and seeded SQLite database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite://"+filepath.Join(t.TempDir(), "breaktrack_test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Bootstrap(context.Background(), db, AdminPassword, zap.NewNop()); err != nil {
		t.Fatalf("bootstrap test db: %v", err)
	}
	return db
}

// Admin returns the seeded admin account.
func Admin(t testing.TB, db *gorm.DB) models.User {
	t.Helper()
	var u models.User
	if err := db.Where("username = ?", database.DefaultAdminUsername).First(&u).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	return u
}

// CreateEmployee inserts a non-admin user with the given password.
func CreateEmployee(t testing.TB, db *gorm.DB, username, password string) models.User {
	t.Helper()

	var role models.Role
	if err := db.Where("name = ?", models.RoleEmployee).First(&role).Error; err != nil {
		t.Fatalf("load employee role: %v", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := models.User{
		Username:     username,
		Email:        username + "@x.com",
		PasswordHash: string(hash),
		RoleID:       &role.ID,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create employee %s: %v", username, err)
	}
	return u
}
