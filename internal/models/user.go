package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Principal is the authenticated actor of a request.
type Principal interface {
	IsAuthenticated() bool
	PrincipalID() uint
	IsAdministrator() bool
}

type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:64;not null"`
}

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:64;not null"`
	Email        string    `gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `gorm:"size:256;not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	RoleID       *uint
	Role         *Role
	CreatedAt    time.Time
}

func (u *User) IsAuthenticated() bool { return u != nil && u.ID != 0 }

func (u *User) PrincipalID() uint {
	if u == nil {
		return 0
	}
	return u.ID
}

func (u *User) IsAdministrator() bool { return u != nil && u.IsAdmin }
