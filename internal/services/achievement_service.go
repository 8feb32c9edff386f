package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/glyphica/glyphica-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAchievementIDRequired = errors.New("achievement id is required")

type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

// Unlock records a one-time achievement unlock. A repeat unlock of the same
// (user, achievement) pair returns created=false and leaves the original row,
// including its timestamp, untouched.
func (s *AchievementService) Unlock(userID uuid.UUID, achievementID string) (bool, error) {
	if achievementID == "" {
		return false, ErrAchievementIDRequired
	}

	var existing models.AchievementUnlock
	err := s.db.Where("user_id = ? AND achievement_id = ?", userID, achievementID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to check achievement: %w", err)
	}

	unlock := models.AchievementUnlock{
		ID:            uuid.New(),
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now().UTC(),
	}

	if err := s.db.Create(&unlock).Error; err != nil {
		// A concurrent unlock of the same pair trips the unique index;
		// that still counts as already unlocked.
		var again models.AchievementUnlock
		if qErr := s.db.Where("user_id = ? AND achievement_id = ?", userID, achievementID).First(&again).Error; qErr == nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to unlock achievement: %w", err)
	}

	return true, nil
}

// UnlockedForUser returns every unlock a user has, oldest first.
func (s *AchievementService) UnlockedForUser(userID uuid.UUID) ([]models.AchievementUnlock, error) {
	var unlocks []models.AchievementUnlock
	if err := s.db.Where("user_id = ?", userID).Order("unlocked_at ASC").Find(&unlocks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch achievements: %w", err)
	}
	return unlocks, nil
}
