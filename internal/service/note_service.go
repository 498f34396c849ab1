package service

import (
	"context"
	"strings"

	"constella/internal/models"
	"constella/internal/repository"
)

// NoteService provides personal free-text note business logic.
type NoteService struct {
	noteRepo repository.NoteRepository
}

// NewNoteService returns a new NoteService.
func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

// AddNote stores a new note for the user.
func (s *NoteService) AddNote(ctx context.Context, userID uint, text string) (*models.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Note text is required")
	}

	note := &models.Note{
		UserID: userID,
		Text:   text,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes returns the user's notes newest first.
func (s *NoteService) ListNotes(ctx context.Context, userID uint) ([]models.Note, error) {
	return s.noteRepo.ListByOwner(ctx, userID)
}
