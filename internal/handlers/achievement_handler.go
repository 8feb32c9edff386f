package handlers

import (
	"errors"

	"github.com/glyphica/glyphica-backend/internal/dto"
	"github.com/glyphica/glyphica-backend/internal/middleware"
	"github.com/glyphica/glyphica-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AchievementHandler struct {
	achievementService *services.AchievementService
}

func NewAchievementHandler(achievementService *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// Unlock handles POST /stats/achievement - idempotent one-time unlock.
func (h *AchievementHandler) Unlock(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UnlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	created, err := h.achievementService.Unlock(userID, req.AchievementID)
	if err != nil {
		if errors.Is(err, services.ErrAchievementIDRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to unlock achievement",
		})
	}

	return c.JSON(dto.UnlockResponse{Created: created})
}

// List handles GET /stats/achievements - every unlock the user has.
func (h *AchievementHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	unlocks, err := h.achievementService.UnlockedForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch achievements",
		})
	}

	resp := make([]dto.AchievementResponse, 0, len(unlocks))
	for _, u := range unlocks {
		resp = append(resp, dto.AchievementResponse{
			AchievementID: u.AchievementID,
			UnlockedAt:    u.UnlockedAt,
		})
	}

	return c.JSON(resp)
}
