package services

import (
	"fmt"
	"math"

	"github.com/glyphica/glyphica-backend/internal/dto"
	"github.com/glyphica/glyphica-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recentGamesLimit = 10

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// ComputeProfile derives the profile view from the user's full game history.
// A user with no games gets the zeroed shape, not an error. Averages stay
// unrounded here; Summary is the path that rounds.
func (s *StatsService) ComputeProfile(userID uuid.UUID) (*dto.ProfileResponse, error) {
	var records []models.GameRecord
	// id DESC keeps the order total when two games share a timestamp
	if err := s.db.Where("user_id = ?", userID).
		Order("played_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}

	var unlocks []models.AchievementUnlock
	if err := s.db.Where("user_id = ?", userID).Order("unlocked_at ASC").Find(&unlocks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch achievements: %w", err)
	}

	resp := &dto.ProfileResponse{
		RecentGames:  []dto.GameResponse{},
		Achievements: make([]dto.AchievementResponse, 0, len(unlocks)),
	}
	for _, u := range unlocks {
		resp.Achievements = append(resp.Achievements, dto.AchievementResponse{
			AchievementID: u.AchievementID,
			UnlockedAt:    u.UnlockedAt,
		})
	}

	if len(records) == 0 {
		return resp, nil
	}

	stats := dto.ProfileStats{TotalGames: len(records)}
	var sumWpm, sumAccuracy float64
	for _, r := range records {
		if r.Score > stats.BestScore {
			stats.BestScore = r.Score
		}
		if r.Wave > stats.BestWave {
			stats.BestWave = r.Wave
		}
		sumWpm += r.WPM
		sumAccuracy += float64(r.Accuracy)
		stats.TotalKills += r.Kills
	}
	stats.AvgWpm = sumWpm / float64(len(records))
	stats.AvgAccuracy = sumAccuracy / float64(len(records))
	resp.Stats = stats

	recent := records
	if len(recent) > recentGamesLimit {
		recent = recent[:recentGamesLimit]
	}
	for _, r := range recent {
		resp.RecentGames = append(resp.RecentGames, dto.GameResponse{
			ID:       r.ID,
			Score:    r.Score,
			Wave:     r.Wave,
			Accuracy: r.Accuracy,
			WPM:      r.WPM,
			Mode:     r.Mode,
			Kills:    r.Kills,
			PlayedAt: r.PlayedAt,
		})
	}

	return resp, nil
}

// Summary is the bulk aggregate computed in SQL. Unlike the profile view it
// rounds averages to one decimal and includes the summed score.
func (s *StatsService) Summary(userID uuid.UUID) (*dto.UserSummary, error) {
	var row struct {
		TotalGames  int
		BestScore   int
		BestWave    int
		AvgWpm      float64
		AvgAccuracy float64
		TotalKills  int
		TotalScore  int
	}

	err := s.db.Model(&models.GameRecord{}).
		Select("COUNT(*) AS total_games, " +
			"COALESCE(MAX(score), 0) AS best_score, " +
			"COALESCE(MAX(wave), 0) AS best_wave, " +
			"COALESCE(AVG(wpm), 0) AS avg_wpm, " +
			"COALESCE(AVG(accuracy), 0) AS avg_accuracy, " +
			"COALESCE(SUM(kills), 0) AS total_kills, " +
			"COALESCE(SUM(score), 0) AS total_score").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	return &dto.UserSummary{
		TotalGames:  row.TotalGames,
		BestScore:   row.BestScore,
		BestWave:    row.BestWave,
		AvgWpm:      round1(row.AvgWpm),
		AvgAccuracy: round1(row.AvgAccuracy),
		TotalKills:  row.TotalKills,
		TotalScore:  row.TotalScore,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
