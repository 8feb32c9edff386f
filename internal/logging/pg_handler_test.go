package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/glyphica/glyphica-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	return db
}

func TestPGHandlerOnlyErrors(t *testing.T) {
	h := NewPGHandler(newLogDB(t))
	defer h.Stop()

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPGHandlerPersistsRecord(t *testing.T) {
	db := newLogDB(t)
	h := NewPGHandler(db)
	defer h.Stop()

	record := slog.NewRecord(time.Now(), slog.LevelError, "save failed", 0)
	record.AddAttrs(
		slog.String("action", "save_game"),
		slog.String("error", "connection reset"),
		slog.String("attempt", "2"),
	)
	require.NoError(t, h.Handle(context.Background(), record))
	h.flush()

	var stored []models.SystemLog
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "ERROR", stored[0].Level)
	assert.Equal(t, "save failed", stored[0].Message)
	assert.Equal(t, "save_game", stored[0].Action)
	assert.Equal(t, "connection reset", stored[0].Error)
	assert.Contains(t, string(stored[0].Extra), "attempt")
}
