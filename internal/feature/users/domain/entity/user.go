// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email identifies the user at signin. No two users share an email.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password holds the "<salt>.<hash>" encoding produced at signup.
	Password string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
