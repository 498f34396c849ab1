package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetConnections handles GET /api/connections. The response groups the
// caller's connections into incoming, outgoing, and accepted buckets,
// each entry carrying the counterpart's profile when one exists.
func (s *Server) GetConnections(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	groups, err := s.connectionService.Overview(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(groups)
}

// SendConnectionRequest handles POST /api/connections/requests/:userId
func (s *Server) SendConnectionRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	conn, err := s.connectionService.SendRequest(c.Context(), userID, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(conn)
}

// AcceptConnectionRequest handles POST /api/connections/requests/:requestId/accept
func (s *Server) AcceptConnectionRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	conn, err := s.connectionService.AcceptRequest(c.Context(), userID, requestID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(conn)
}

// RemoveConnection handles DELETE /api/connections/:connectionId.
// It serves rejection of an incoming request, cancellation of an
// outgoing one, and severing an accepted connection alike.
func (s *Server) RemoveConnection(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	connectionID, err := s.parseID(c, "connectionId")
	if err != nil {
		return nil
	}

	if _, err := s.connectionService.RemoveConnection(c.Context(), userID, connectionID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Connection removed"})
}
