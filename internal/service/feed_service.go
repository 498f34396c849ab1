package service

import (
	"context"

	"constella/internal/models"
	"constella/internal/repository"
)

// FeedService assembles the aggregated moment feed for a viewer.
type FeedService struct {
	momentRepo repository.MomentRepository
	connRepo   repository.ConnectionRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(momentRepo repository.MomentRepository, connRepo repository.ConnectionRepository) *FeedService {
	return &FeedService{
		momentRepo: momentRepo,
		connRepo:   connRepo,
	}
}

// GetFeed returns the moments the viewer may see, newest first, optionally
// constrained to one circle. The candidate query already excludes other
// users' private moments; the in-memory filter then tightens the
// connections-visibility case using the viewer's accepted-counterpart set.
func (s *FeedService) GetFeed(ctx context.Context, viewerID uint, circleID *uint) ([]models.Moment, error) {
	accepted, err := s.connRepo.ListAcceptedForUser(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	connected := AcceptedCounterparts(accepted, viewerID)

	candidates, err := s.momentRepo.ListFeedCandidates(ctx, viewerID, circleID)
	if err != nil {
		return nil, err
	}

	return FilterVisibleMoments(candidates, viewerID, connected), nil
}
