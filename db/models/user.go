package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Role ids are fixed by the seed: Admin is 1, User is 2.
const (
	RoleAdminID uint = 1
	RoleUserID  uint = 2
)

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

// User is an operator of the back office, not a client.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	Login        string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"login"`
	Email        string     `gorm:"not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Salt         string     `gorm:"not null" json:"-"`
	RoleID       uint       `gorm:"not null" json:"role_id"`
	Role         Role       `gorm:"foreignKey:RoleID" json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
