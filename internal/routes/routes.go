package routes

import (
	"github.com/glyphica/glyphica-backend/internal/config"
	"github.com/glyphica/glyphica-backend/internal/handlers"
	"github.com/glyphica/glyphica-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	statsHandler *handlers.StatsHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	achievementHandler *handlers.AchievementHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Leaderboard is public: the page renders before login
	api.Get("/stats/leaderboard", leaderboardHandler.Get)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so it never touches the public ones
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	protected := api.Group("/p", middleware.JWTProtected(cfg))
	protected.Post("/stats/game", statsHandler.SubmitGame)
	protected.Get("/stats/profile", statsHandler.Profile)
	protected.Get("/stats/summary", statsHandler.Summary)
	protected.Post("/stats/achievement", achievementHandler.Unlock)
	protected.Get("/stats/achievements", achievementHandler.List)
}
