package service

import (
	"context"
	"strings"

	"constella/internal/models"
	"constella/internal/repository"
)

// profileSearchLimit caps the number of profile search results.
const profileSearchLimit = 10

// ProfileService provides public profile business logic.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// EnsureProfile creates or refreshes the public profile for an account.
// Called on every session-establishing signup or login. The display name
// falls back to the username, then to the local part of the email.
func (s *ProfileService) EnsureProfile(ctx context.Context, user *models.User) (*models.Profile, error) {
	displayName := user.Username
	if displayName == "" {
		displayName = strings.SplitN(user.Email, "@", 2)[0]
	}

	profile := &models.Profile{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: displayName,
		Email:       user.Email,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, user.ID)
}

// GetProfile returns the public profile for the given user id.
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// SearchProfiles matches the term against username, display name and email,
// excluding the caller. An empty term yields no results.
func (s *ProfileService) SearchProfiles(ctx context.Context, callerID uint, term string) ([]models.Profile, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Profile{}, nil
	}
	return s.profileRepo.Search(ctx, term, callerID, profileSearchLimit)
}
