package services

import (
	"fmt"
	"sort"

	"github.com/glyphica/glyphica-backend/internal/dto"
	"github.com/glyphica/glyphica-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 100
)

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// Rank builds the global leaderboard for a mode: one entry per user, that
// user's best-scoring game, ordered by score descending. On equal scores the
// earlier game ranks higher. A record whose user no longer resolves shows as
// "Unknown" instead of failing.
func (s *LeaderboardService) Rank(mode string, limit int, withTimestamps bool) ([]dto.LeaderboardEntry, error) {
	if mode == "" {
		mode = "classic"
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	var records []models.GameRecord
	// played_at ASC so the first game to reach a user's best score is the
	// one retained, and id ASC keeps the scan order total
	if err := s.db.Where("mode = ?", mode).
		Order("played_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}

	best := make(map[uuid.UUID]models.GameRecord, len(records))
	for _, r := range records {
		cur, seen := best[r.UserID]
		if !seen || r.Score > cur.Score {
			best[r.UserID] = r
		}
	}

	retained := make([]models.GameRecord, 0, len(best))
	userIDs := make([]uuid.UUID, 0, len(best))
	for id, r := range best {
		userIDs = append(userIDs, id)
		retained = append(retained, r)
	}

	// score DESC; on a tie the earlier game ranks higher, uuid keeps the
	// order total
	sort.Slice(retained, func(i, j int) bool {
		if retained[i].Score != retained[j].Score {
			return retained[i].Score > retained[j].Score
		}
		if !retained[i].PlayedAt.Equal(retained[j].PlayedAt) {
			return retained[i].PlayedAt.Before(retained[j].PlayedAt)
		}
		return retained[i].ID.String() < retained[j].ID.String()
	})

	if len(retained) > limit {
		retained = retained[:limit]
	}

	usernames := make(map[uuid.UUID]string, len(userIDs))
	if len(userIDs) > 0 {
		var users []models.User
		if err := s.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch users: %w", err)
		}
		for _, u := range users {
			usernames[u.ID] = u.Username
		}
	}

	entries := make([]dto.LeaderboardEntry, 0, len(retained))
	for _, record := range retained {
		username, ok := usernames[record.UserID]
		if !ok {
			username = "Unknown"
		}
		entry := dto.LeaderboardEntry{
			Username: username,
			Score:    record.Score,
			Wave:     record.Wave,
			WPM:      record.WPM,
			Accuracy: record.Accuracy,
		}
		if withTimestamps {
			playedAt := record.PlayedAt
			entry.PlayedAt = &playedAt
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
