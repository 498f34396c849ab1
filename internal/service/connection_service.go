package service

import (
	"context"

	"constella/internal/models"
	"constella/internal/repository"
)

// ConnectionService provides connection-request and relationship business logic.
type ConnectionService struct {
	connRepo    repository.ConnectionRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewConnectionService returns a new ConnectionService.
func NewConnectionService(connRepo repository.ConnectionRepository, profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ConnectionService {
	return &ConnectionService{
		connRepo:    connRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Overview loads every connection touching the user together with the
// counterpart profiles and classifies them into incoming, outgoing and
// accepted groups.
func (s *ConnectionService) Overview(ctx context.Context, userID uint) (*ConnectionGroups, error) {
	raw, err := s.connRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profilesByID := make(map[uint]*models.Profile)
	if len(raw) > 0 {
		seen := make(map[uint]struct{}, len(raw))
		otherIDs := make([]uint, 0, len(raw))
		for _, c := range raw {
			otherID := c.Counterpart(userID)
			if _, ok := seen[otherID]; ok {
				continue
			}
			seen[otherID] = struct{}{}
			otherIDs = append(otherIDs, otherID)
		}

		profiles, err := s.profileRepo.GetByUserIDs(ctx, otherIDs)
		if err != nil {
			return nil, err
		}
		for i := range profiles {
			profilesByID[profiles[i].UserID] = &profiles[i]
		}
	}

	groups := ClassifyConnections(raw, userID, profilesByID)
	return &groups, nil
}

// SendRequest creates a pending connection request to the target user.
func (s *ConnectionService) SendRequest(ctx context.Context, userID, targetUserID uint) (*models.Connection, error) {
	if userID == targetUserID {
		return nil, models.NewValidationError("Cannot send a connection request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	existing, err := s.connRepo.GetBetweenUsers(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.ConnectionStatusAccepted:
			return nil, models.NewValidationError("You are already connected")
		case models.ConnectionStatusPending:
			if existing.UserID == userID {
				return nil, models.NewValidationError("Connection request already sent")
			}
			return nil, models.NewValidationError("You already have a pending connection request from this user")
		}
	}

	connection := &models.Connection{
		UserID:       userID,
		TargetUserID: targetUserID,
		Status:       models.ConnectionStatusPending,
	}
	if err := s.connRepo.Create(ctx, connection); err != nil {
		return nil, err
	}

	return connection, nil
}

// AcceptRequest accepts a pending connection request addressed to the user.
func (s *ConnectionService) AcceptRequest(ctx context.Context, userID, connectionID uint) (*models.Connection, error) {
	connection, err := s.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}

	if connection.TargetUserID != userID {
		return nil, models.NewUnauthorizedError("You can only accept connection requests sent to you")
	}
	if connection.Status != models.ConnectionStatusPending {
		return nil, models.NewValidationError("Connection request is not pending")
	}

	if err := s.connRepo.UpdateStatus(ctx, connectionID, models.ConnectionStatusAccepted); err != nil {
		return nil, err
	}

	return s.connRepo.GetByID(ctx, connectionID)
}

// RemoveConnection deletes a connection row the user participates in. For
// pending rows this is a rejection (target) or cancellation (source); for
// accepted rows it dissolves the relationship. No rejected state is ever
// persisted.
func (s *ConnectionService) RemoveConnection(ctx context.Context, userID, connectionID uint) (*models.Connection, error) {
	connection, err := s.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}

	if !connection.Touches(userID) {
		return nil, models.NewUnauthorizedError("You can only remove your own connections")
	}

	if err := s.connRepo.Delete(ctx, connectionID); err != nil {
		return nil, err
	}

	return connection, nil
}
