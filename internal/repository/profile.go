package repository

import (
	"context"
	"errors"
	"strings"

	"constella/internal/cache"
	"constella/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines the interface for public profile data operations
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	GetByUserIDs(ctx context.Context, userIDs []uint) ([]models.Profile, error)
	Search(ctx context.Context, term string, excludeUserID uint, limit int) ([]models.Profile, error)
}

// profileRepository implements ProfileRepository
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert creates the profile or refreshes its public attributes, keyed on
// user_id. Called on every session-establishing signup or login.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "display_name", "email", "avatar_url", "updated_at"}),
		}).
		Create(profile).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := cache.Aside(ctx, cache.ProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserIDs(ctx context.Context, userIDs []uint) ([]models.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// Search matches the term against username, display name and email,
// excluding the caller's own profile.
func (r *profileRepository) Search(ctx context.Context, term string, excludeUserID uint, limit int) ([]models.Profile, error) {
	var profiles []models.Profile
	pattern := "%" + strings.ToLower(term) + "%"
	if err := r.db.WithContext(ctx).
		Where("(LOWER(username) LIKE ? OR LOWER(display_name) LIKE ? OR LOWER(email) LIKE ?) AND user_id != ?",
			pattern, pattern, pattern, excludeUserID).
		Limit(limit).
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}
