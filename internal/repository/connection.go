package repository

import (
	"context"
	"errors"

	"constella/internal/models"

	"gorm.io/gorm"
)

// ConnectionRepository defines the interface for connection data operations
type ConnectionRepository interface {
	Create(ctx context.Context, connection *models.Connection) error
	GetByID(ctx context.Context, id uint) (*models.Connection, error)
	GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error)
	// ListForUser returns every connection where the user is either endpoint.
	ListForUser(ctx context.Context, userID uint) ([]models.Connection, error)
	// ListAcceptedForUser returns accepted connections touching the user.
	ListAcceptedForUser(ctx context.Context, userID uint) ([]models.Connection, error)
	UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error
	Delete(ctx context.Context, connectionID uint) error
}

// connectionRepository implements ConnectionRepository
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, connection *models.Connection) error {
	if err := r.db.WithContext(ctx).Create(connection).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	var connection models.Connection
	if err := r.db.WithContext(ctx).First(&connection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Connection", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &connection, nil
}

func (r *connectionRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error) {
	var connection models.Connection

	// Find a connection between the pair in either direction
	if err := r.db.WithContext(ctx).
		Where("(user_id = ? AND target_user_id = ?) OR (user_id = ? AND target_user_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&connection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no connection exists
		}
		return nil, models.NewInternalError(err)
	}
	return &connection, nil
}

func (r *connectionRepository) ListForUser(ctx context.Context, userID uint) ([]models.Connection, error) {
	var connections []models.Connection
	if err := r.db.WithContext(ctx).
		Where("user_id = ? OR target_user_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&connections).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return connections, nil
}

func (r *connectionRepository) ListAcceptedForUser(ctx context.Context, userID uint) ([]models.Connection, error) {
	var connections []models.Connection
	if err := r.db.WithContext(ctx).
		Where("(user_id = ? OR target_user_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Find(&connections).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return connections, nil
}

// UpdateStatus is a silent no-op when no row matches the id.
func (r *connectionRepository) UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("id = ?", connectionID).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) Delete(ctx context.Context, connectionID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Connection{}, connectionID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
