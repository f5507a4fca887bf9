package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"unique"`
	Password  string `json:"-"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	Roles     []Role `json:"roles" gorm:"many2many:user_roles;"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type Role struct {
	gorm.Model
	Name        string       `json:"name" gorm:"unique"`
	Permissions []Permission `json:"permissions" gorm:"many2many:role_permissions;"`
}

type Permission struct {
	gorm.Model
	Name string `json:"name" gorm:"unique"`
}

type UserSession struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index"`
	SessionID      string    `json:"session_id" gorm:"index"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
