package handlers

import (
	"github.com/glyphica/glyphica-backend/internal/dto"
	"github.com/glyphica/glyphica-backend/internal/middleware"
	"github.com/glyphica/glyphica-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	gameService  *services.GameService
	statsService *services.StatsService
}

func NewStatsHandler(gameService *services.GameService, statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{gameService: gameService, statsService: statsService}
}

// SubmitGame handles POST /stats/game - appends one finished game.
func (h *StatsHandler) SubmitGame(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SubmitGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	record, err := h.gameService.SubmitGame(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save game",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SubmitGameResponse{GameID: record.ID})
}

// Profile handles GET /stats/profile - the derived per-user summary view.
func (h *StatsHandler) Profile(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	profile, err := h.statsService.ComputeProfile(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	return c.JSON(profile)
}

// Summary handles GET /stats/summary - the rounded SQL-aggregate view.
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	summary, err := h.statsService.Summary(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load summary",
		})
	}

	return c.JSON(summary)
}
