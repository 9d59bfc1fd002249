package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Age       int    `json:"age"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON

	// Password recovery. Both fields are set together and cleared together;
	// a token without an expiry (or the reverse) is never persisted.
	ResetToken       *string    `gorm:"index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
