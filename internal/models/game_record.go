package models

import (
	"time"

	"github.com/google/uuid"
)

// GameRecord is one finished play session. Rows are append-only and never
// mutated; ID and PlayedAt are assigned server-side at insert time.
type GameRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Score    int       `gorm:"not null;default:0;index" json:"score"`
	Wave     int       `gorm:"not null;default:1" json:"wave"`
	Accuracy int       `gorm:"not null;default:100" json:"accuracy"`
	WPM      float64   `gorm:"not null;default:0" json:"wpm"`
	Mode     string    `gorm:"size:50;not null;default:'classic';index" json:"mode"`
	Kills    int       `gorm:"not null;default:0" json:"kills"`
	PlayedAt time.Time `gorm:"not null;index" json:"played_at"`
}
