package service

import (
	"context"
	"testing"

	"constella/internal/models"
)

type noteRepoStub struct {
	createFn      func(context.Context, *models.Note) error
	listByOwnerFn func(context.Context, uint) ([]models.Note, error)
}

func (s *noteRepoStub) Create(ctx context.Context, note *models.Note) error {
	return s.createFn(ctx, note)
}
func (s *noteRepoStub) ListByOwner(ctx context.Context, userID uint) ([]models.Note, error) {
	return s.listByOwnerFn(ctx, userID)
}

func TestAddNoteRequiresText(t *testing.T) {
	svc := NewNoteService(&noteRepoStub{})
	_, err := svc.AddNote(context.Background(), 1, "  \n ")
	expectAppError(t, err, "VALIDATION_ERROR")
}

func TestAddNoteTrims(t *testing.T) {
	repo := &noteRepoStub{
		createFn: func(_ context.Context, n *models.Note) error {
			n.ID = 4
			return nil
		},
	}
	svc := NewNoteService(repo)

	note, err := svc.AddNote(context.Background(), 1, "  recordar llamar a mamá  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.ID != 4 || note.Text != "recordar llamar a mamá" || note.UserID != 1 {
		t.Fatalf("unexpected note: %+v", note)
	}
}

func TestListNotesDelegates(t *testing.T) {
	repo := &noteRepoStub{
		listByOwnerFn: func(_ context.Context, userID uint) ([]models.Note, error) {
			if userID != 7 {
				t.Fatalf("expected owner 7, got %d", userID)
			}
			return []models.Note{{ID: 2}, {ID: 1}}, nil
		},
	}
	svc := NewNoteService(repo)

	notes, err := svc.ListNotes(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != 2 {
		t.Fatalf("unexpected notes: %+v", notes)
	}
}
