package service

import (
	"context"
	"strings"

	"constella/internal/models"
	"constella/internal/repository"
)

// PublishMomentInput carries the caller-supplied fields of a new moment.
type PublishMomentInput struct {
	CircleID   uint
	Title      string
	Content    string
	Mood       string
	Visibility models.Visibility
}

// MomentService provides moment publishing business logic. Moments are
// immutable once published; there is no edit or delete path.
type MomentService struct {
	momentRepo repository.MomentRepository
	circleRepo repository.CircleRepository
}

// NewMomentService returns a new MomentService.
func NewMomentService(momentRepo repository.MomentRepository, circleRepo repository.CircleRepository) *MomentService {
	return &MomentService{
		momentRepo: momentRepo,
		circleRepo: circleRepo,
	}
}

// PublishMoment validates and stores a new moment authored by the user. The
// circle must be owned by the author.
func (s *MomentService) PublishMoment(ctx context.Context, userID uint, input PublishMomentInput) (*models.Moment, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, models.NewValidationError("Moment title is required")
	}
	if input.CircleID == 0 {
		return nil, models.NewValidationError("A circle must be selected")
	}

	circle, err := s.circleRepo.GetByID(ctx, input.CircleID)
	if err != nil {
		return nil, err
	}
	if circle.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only publish moments into your own circles")
	}

	mood := input.Mood
	if mood == "" {
		mood = models.DefaultMood
	}
	if !models.ValidMood(mood) {
		return nil, models.NewValidationError("Unknown mood")
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = models.VisibilityConnections
	}
	if !models.ValidVisibility(visibility) {
		return nil, models.NewValidationError("Unknown visibility level")
	}

	moment := &models.Moment{
		UserID:     userID,
		CircleID:   input.CircleID,
		Title:      title,
		Content:    strings.TrimSpace(input.Content),
		Mood:       mood,
		Visibility: visibility,
	}
	if err := s.momentRepo.Create(ctx, moment); err != nil {
		return nil, err
	}
	return moment, nil
}
