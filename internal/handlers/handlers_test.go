package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/glyphica/glyphica-backend/internal/config"
	"github.com/glyphica/glyphica-backend/internal/dto"
	"github.com/glyphica/glyphica-backend/internal/handlers"
	"github.com/glyphica/glyphica-backend/internal/models"
	"github.com/glyphica/glyphica-backend/internal/routes"
	"github.com/glyphica/glyphica-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
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

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}

	authService := services.NewAuthService(db, cfg)
	gameService := services.NewGameService(db)
	statsService := services.NewStatsService(db)
	leaderboardService := services.NewLeaderboardService(db)
	achievementService := services.NewAchievementService(db)

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(),
		handlers.NewStatsHandler(gameService, statsService),
		handlers.NewLeaderboardHandler(leaderboardService),
		handlers.NewAchievementHandler(achievementService),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func register(t *testing.T, app *fiber.App, username, password string) dto.AuthResponse {
	t.Helper()
	resp, raw := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": username, "password": password,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(raw, &auth))
	return auth
}

func TestRegisterLoginFlow(t *testing.T) {
	app := newTestApp(t)

	auth := register(t, app, "Speedy", "hunter2")
	assert.Equal(t, "Speedy", auth.User.Username)
	assert.NotEmpty(t, auth.AccessToken)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "SPEEDY", "password": "hunter2",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "ok", "password": "hunter2",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "speedy", "password": "hunter2",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
}

func TestLoginFailuresShareOneShape(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "speedy", "hunter2")

	resp1, raw1 := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "nobody", "password": "hunter2",
	})
	resp2, raw2 := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "speedy", "password": "wrong",
	})

	assert.Equal(t, fiber.StatusUnauthorized, resp1.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, resp2.StatusCode)
	assert.JSONEq(t, string(raw1), string(raw2))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/p/stats/profile", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/p/stats/game", "", fiber.Map{"score": 10})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGameProfileLeaderboardFlow(t *testing.T) {
	app := newTestApp(t)
	auth := register(t, app, "speedy", "hunter2")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/p/stats/game", auth.AccessToken, fiber.Map{
		"score": 4200, "wave": 12, "accuracy": 97, "wpm": 88.5, "mode": "classic", "kills": 134,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var submitted dto.SubmitGameResponse
	require.NoError(t, json.Unmarshal(raw, &submitted))

	resp, raw = doJSON(t, app, http.MethodGet, "/api/p/stats/profile", auth.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var profile dto.ProfileResponse
	require.NoError(t, json.Unmarshal(raw, &profile))
	assert.Equal(t, 1, profile.Stats.TotalGames)
	assert.Equal(t, 4200, profile.Stats.BestScore)
	require.Len(t, profile.RecentGames, 1)
	assert.Equal(t, submitted.GameID, profile.RecentGames[0].ID)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/stats/leaderboard?mode=classic", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var entries []dto.LeaderboardEntry
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "speedy", entries[0].Username)
	assert.Equal(t, 4200, entries[0].Score)
	assert.Nil(t, entries[0].PlayedAt)
}

func TestAchievementUnlockEndpoint(t *testing.T) {
	app := newTestApp(t)
	auth := register(t, app, "speedy", "hunter2")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/p/stats/achievement", auth.AccessToken, fiber.Map{
		"achievement_id": "wave_10",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var unlock dto.UnlockResponse
	require.NoError(t, json.Unmarshal(raw, &unlock))
	assert.True(t, unlock.Created)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/p/stats/achievement", auth.AccessToken, fiber.Map{
		"achievement_id": "wave_10",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &unlock))
	assert.False(t, unlock.Created)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/p/stats/achievements", auth.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []dto.AchievementResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "wave_10", list[0].AchievementID)
}
