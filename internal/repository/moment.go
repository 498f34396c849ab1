package repository

import (
	"context"
	"errors"

	"constella/internal/models"

	"gorm.io/gorm"
)

// FeedCandidateLimit caps the number of rows the feed candidate query
// returns. The in-memory visibility filter only ever tightens this set.
const FeedCandidateLimit = 80

// MomentRepository defines the interface for moment data operations
type MomentRepository interface {
	Create(ctx context.Context, moment *models.Moment) error
	GetByID(ctx context.Context, id uint) (*models.Moment, error)
	// ListFeedCandidates returns moments satisfying
	// "visibility IN (public, connections) OR author = viewer", optionally
	// constrained to one circle, newest first, capped at FeedCandidateLimit.
	// Truly private moments of other users never leave this query; it is the
	// authoritative visibility boundary.
	ListFeedCandidates(ctx context.Context, viewerID uint, circleID *uint) ([]models.Moment, error)
}

// momentRepository implements MomentRepository
type momentRepository struct {
	db *gorm.DB
}

// NewMomentRepository creates a new moment repository
func NewMomentRepository(db *gorm.DB) MomentRepository {
	return &momentRepository{db: db}
}

func (r *momentRepository) Create(ctx context.Context, moment *models.Moment) error {
	if err := r.db.WithContext(ctx).Create(moment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *momentRepository) GetByID(ctx context.Context, id uint) (*models.Moment, error) {
	var moment models.Moment
	if err := r.db.WithContext(ctx).First(&moment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Moment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &moment, nil
}

func (r *momentRepository) ListFeedCandidates(ctx context.Context, viewerID uint, circleID *uint) ([]models.Moment, error) {
	var moments []models.Moment

	query := r.db.WithContext(ctx).
		Where("visibility IN ? OR user_id = ?",
			[]models.Visibility{models.VisibilityPublic, models.VisibilityConnections}, viewerID)
	if circleID != nil {
		query = query.Where("circle_id = ?", *circleID)
	}

	if err := query.
		Order("created_at DESC").
		Limit(FeedCandidateLimit).
		Find(&moments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return moments, nil
}
