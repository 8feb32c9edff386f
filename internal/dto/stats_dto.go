package dto

import (
	"time"

	"github.com/google/uuid"
)

// SubmitGameRequest carries one finished game. Numeric fields are pointers so
// an explicit zero survives while an absent field falls back to its default
// (score 0, wave 1, accuracy 100, wpm 0, kills 0, mode "classic").
type SubmitGameRequest struct {
	Score    *int     `json:"score"`
	Wave     *int     `json:"wave"`
	Accuracy *int     `json:"accuracy"`
	WPM      *float64 `json:"wpm"`
	Mode     string   `json:"mode"`
	Kills    *int     `json:"kills"`
}

type SubmitGameResponse struct {
	GameID uuid.UUID `json:"gameId"`
}

type GameResponse struct {
	ID       uuid.UUID `json:"id"`
	Score    int       `json:"score"`
	Wave     int       `json:"wave"`
	Accuracy int       `json:"accuracy"`
	WPM      float64   `json:"wpm"`
	Mode     string    `json:"mode"`
	Kills    int       `json:"kills"`
	PlayedAt time.Time `json:"played_at"`
}

// ProfileStats are the per-user aggregates shown on the profile page.
// Averages are intentionally left unrounded here; the client formats them.
// The bulk summary path (UserSummary) is the one that rounds.
type ProfileStats struct {
	TotalGames  int     `json:"totalGames"`
	BestScore   int     `json:"bestScore"`
	BestWave    int     `json:"bestWave"`
	AvgWpm      float64 `json:"avgWpm"`
	AvgAccuracy float64 `json:"avgAccuracy"`
	TotalKills  int     `json:"totalKills"`
}

type ProfileResponse struct {
	Stats        ProfileStats          `json:"stats"`
	RecentGames  []GameResponse        `json:"recentGames"`
	Achievements []AchievementResponse `json:"achievements"`
}

// UserSummary is the SQL-aggregate summary: averages rounded to one decimal,
// plus the total score the profile view does not carry.
type UserSummary struct {
	TotalGames  int     `json:"totalGames"`
	BestScore   int     `json:"bestScore"`
	BestWave    int     `json:"bestWave"`
	AvgWpm      float64 `json:"avgWpm"`
	AvgAccuracy float64 `json:"avgAccuracy"`
	TotalKills  int     `json:"totalKills"`
	TotalScore  int     `json:"totalScore"`
}

// LeaderboardEntry is one user's best qualifying game for a mode. PlayedAt is
// only populated when the caller asks for timestamps.
type LeaderboardEntry struct {
	Username string     `json:"username"`
	Score    int        `json:"score"`
	Wave     int        `json:"wave"`
	WPM      float64    `json:"wpm"`
	Accuracy int        `json:"accuracy"`
	PlayedAt *time.Time `json:"played_at,omitempty"`
}

type UnlockRequest struct {
	AchievementID string `json:"achievement_id"`
}

type UnlockResponse struct {
	Created bool `json:"created"`
}

type AchievementResponse struct {
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}
