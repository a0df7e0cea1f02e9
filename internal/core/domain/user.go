package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated back-office actor. RoleName references a Role
// by system name; the permission set is resolved at login and embedded in
// the token claims.
type User struct {
	ID              string     `json:"id" gorm:"type:uuid;primaryKey"`
	Email           string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash    string     `json:"-" gorm:"size:255;not null"`
	RoleName        string     `json:"role" gorm:"size:100;not null"`
	Username        *string    `json:"username,omitempty" gorm:"uniqueIndex;size:100"`
	MobileNumber    *string    `json:"mobile_number,omitempty" gorm:"size:30"`
	Address         *string    `json:"address,omitempty" gorm:"type:text"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
