package repository

import (
	"context"
	"errors"

	"constella/internal/cache"
	"constella/internal/models"

	"gorm.io/gorm"
)

// CircleRepository defines the interface for circle data operations
type CircleRepository interface {
	Create(ctx context.Context, circle *models.Circle) error
	GetByID(ctx context.Context, id uint) (*models.Circle, error)
	ListByOwner(ctx context.Context, userID uint) ([]models.Circle, error)
}

// circleRepository implements CircleRepository
type circleRepository struct {
	db *gorm.DB
}

// NewCircleRepository creates a new circle repository
func NewCircleRepository(db *gorm.DB) CircleRepository {
	return &circleRepository{db: db}
}

func (r *circleRepository) Create(ctx context.Context, circle *models.Circle) error {
	if err := r.db.WithContext(ctx).Create(circle).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateCircleList(ctx, circle.UserID)
	return nil
}

func (r *circleRepository) GetByID(ctx context.Context, id uint) (*models.Circle, error) {
	var circle models.Circle
	if err := r.db.WithContext(ctx).First(&circle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Circle", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &circle, nil
}

// ListByOwner returns the owner's circles in insertion order, which is the
// canonical display order.
func (r *circleRepository) ListByOwner(ctx context.Context, userID uint) ([]models.Circle, error) {
	var circles []models.Circle
	err := cache.Aside(ctx, cache.CircleListKey(userID), &circles, cache.CircleListTTL, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("created_at ASC").
			Find(&circles).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return circles, nil
}
