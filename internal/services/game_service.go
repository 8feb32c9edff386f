package services

import (
	"fmt"
	"time"

	"github.com/glyphica/glyphica-backend/internal/dto"
	"github.com/glyphica/glyphica-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

// SubmitGame appends one finished game for the user. Absent fields take their
// defaults; id and played_at come from the server clock, never the client.
func (s *GameService) SubmitGame(userID uuid.UUID, req *dto.SubmitGameRequest) (*models.GameRecord, error) {
	mode := req.Mode
	if mode == "" {
		mode = "classic"
	}

	record := models.GameRecord{
		ID:       uuid.New(),
		UserID:   userID,
		Score:    intOr(req.Score, 0),
		Wave:     intOr(req.Wave, 1),
		Accuracy: intOr(req.Accuracy, 100),
		WPM:      floatOr(req.WPM, 0),
		Mode:     mode,
		Kills:    intOr(req.Kills, 0),
		PlayedAt: time.Now().UTC(),
	}

	// Keep stored values inside their documented ranges.
	if record.Score < 0 {
		record.Score = 0
	}
	if record.Wave < 1 {
		record.Wave = 1
	}
	if record.Accuracy < 0 {
		record.Accuracy = 0
	}
	if record.Accuracy > 100 {
		record.Accuracy = 100
	}
	if record.WPM < 0 {
		record.WPM = 0
	}
	if record.Kills < 0 {
		record.Kills = 0
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &record, nil
}

// RecordsForUser returns all of a user's games. Ordering is left to the
// aggregation layer.
func (s *GameService) RecordsForUser(userID uuid.UUID) ([]models.GameRecord, error) {
	var records []models.GameRecord
	if err := s.db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}
	return records, nil
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
