package server

import (
	"constella/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotes handles GET /api/notes, newest first.
func (s *Server) GetNotes(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	notes, err := s.noteService.ListNotes(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(notes)
}

// CreateNote handles POST /api/notes
func (s *Server) CreateNote(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	note, err := s.noteService.AddNote(c.Context(), userID, req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(note)
}
