package server

import (
	"constella/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCircles handles GET /api/circles
func (s *Server) GetCircles(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	circles, err := s.circleService.ListCircles(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(circles)
}

// CreateCircle handles POST /api/circles
func (s *Server) CreateCircle(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	circle, err := s.circleService.CreateCircle(c.Context(), userID, req.Name, req.Description, req.Color)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(circle)
}
