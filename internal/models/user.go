package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created at registration. Usernames are unique
// case-insensitively; UsernameLower carries the index while Username keeps
// the casing the player typed.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username      string    `gorm:"size:20;not null" json:"username"`
	UsernameLower string    `gorm:"size:20;not null;uniqueIndex" json:"-"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
