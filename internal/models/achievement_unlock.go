package models

import (
	"time"

	"github.com/google/uuid"
)

// AchievementUnlock records the one-time unlock of an achievement for a user.
// The composite unique index makes a second unlock of the same pair a no-op
// at the service layer.
type AchievementUnlock struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_unlocks_user_achievement" json:"user_id"`
	AchievementID string    `gorm:"size:100;not null;uniqueIndex:idx_unlocks_user_achievement" json:"achievement_id"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlocked_at"`
}
