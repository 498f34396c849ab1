package server

import (
	"constella/internal/models"
	"constella/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PublishMoment handles POST /api/moments
func (s *Server) PublishMoment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		CircleID   uint   `json:"circle_id"`
		Title      string `json:"title"`
		Content    string `json:"content"`
		Mood       string `json:"mood"`
		Visibility string `json:"visibility"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	moment, err := s.momentService.PublishMoment(c.Context(), userID, service.PublishMomentInput{
		CircleID:   req.CircleID,
		Title:      req.Title,
		Content:    req.Content,
		Mood:       req.Mood,
		Visibility: models.Visibility(req.Visibility),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(moment)
}
