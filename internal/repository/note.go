package repository

import (
	"context"

	"constella/internal/models"

	"gorm.io/gorm"
)

// NoteRepository defines the interface for personal note data operations
type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	// ListByOwner returns the user's notes newest first, so a just-created
	// note appears at the head of the list.
	ListByOwner(ctx context.Context, userID uint) ([]models.Note, error)
}

// noteRepository implements NoteRepository
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *noteRepository) ListByOwner(ctx context.Context, userID uint) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notes, nil
}
