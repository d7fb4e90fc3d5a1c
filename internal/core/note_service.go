package core

import (
	"context"
	"fmt"
	"time"
)

// NoteService stores one free-text note per calendar day.
type NoteService struct {
	local LocalStore
}

func NewNoteService(local LocalStore) *NoteService {
	return &NoteService{local: local}
}

// Save upserts the note for the given day.
func (s *NoteService) Save(ctx context.Context, date time.Time, text string) (*Note, error) {
	n := Note{Date: date, Note: text}
	if err := s.local.UpsertNote(ctx, n); err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}
	return &n, nil
}

// List returns all notes ordered by date.
func (s *NoteService) List(ctx context.Context) ([]Note, error) {
	return s.local.Notes(ctx)
}
