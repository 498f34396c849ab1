package service

import (
	"context"
	"strings"

	"constella/internal/models"
	"constella/internal/repository"
)

// CircleService provides life-area (circle) business logic.
type CircleService struct {
	circleRepo repository.CircleRepository
}

// NewCircleService returns a new CircleService.
func NewCircleService(circleRepo repository.CircleRepository) *CircleService {
	return &CircleService{circleRepo: circleRepo}
}

// CreateCircle creates a new circle owned by the user. The description falls
// back to a placeholder and the color to the first suggested palette entry.
func (s *CircleService) CreateCircle(ctx context.Context, userID uint, name, description, color string) (*models.Circle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Circle name is required")
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = models.DefaultCircleDescription
	}
	if color == "" {
		color = models.SuggestedCircleColors[0]
	}

	circle := &models.Circle{
		UserID:      userID,
		Name:        name,
		Description: description,
		Color:       color,
	}
	if err := s.circleRepo.Create(ctx, circle); err != nil {
		return nil, err
	}
	return circle, nil
}

// ListCircles returns the user's circles in insertion order.
func (s *CircleService) ListCircles(ctx context.Context, userID uint) ([]models.Circle, error) {
	return s.circleRepo.ListByOwner(ctx, userID)
}
