package services

import (
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/glyphica/glyphica-backend/internal/config"
	"github.com/glyphica/glyphica-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.GameRecord{},
		&models.AchievementUnlock{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		ID:            uuid.New(),
		Username:      username,
		UsernameLower: strings.ToLower(username),
		PasswordHash:  "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedGame(t *testing.T, db *gorm.DB, userID uuid.UUID, score, wave, accuracy int, wpm float64, mode string, kills int, playedAt time.Time) models.GameRecord {
	t.Helper()
	record := models.GameRecord{
		ID:       uuid.New(),
		UserID:   userID,
		Score:    score,
		Wave:     wave,
		Accuracy: accuracy,
		WPM:      wpm,
		Mode:     mode,
		Kills:    kills,
		PlayedAt: playedAt,
	}
	require.NoError(t, db.Create(&record).Error)
	return record
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
