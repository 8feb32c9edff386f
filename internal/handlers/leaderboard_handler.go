package handlers

import (
	"github.com/glyphica/glyphica-backend/internal/dto"
	"github.com/glyphica/glyphica-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Get handles GET /stats/leaderboard?mode=&limit=&timestamps= - public, one
// row per user holding their best game for the mode.
func (h *LeaderboardHandler) Get(c *fiber.Ctx) error {
	mode := c.Query("mode", "classic")
	limit := c.QueryInt("limit", services.DefaultLeaderboardLimit)
	withTimestamps := c.QueryBool("timestamps", false)

	entries, err := h.leaderboardService.Rank(mode, limit, withTimestamps)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load leaderboard",
		})
	}

	return c.JSON(entries)
}
