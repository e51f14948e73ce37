package db

import (
	"context"

	"github.com/google/uuid"
)

const opCreateNote = "create-note"

type CreateNoteParams struct {
	Title string
	Body  string
}

// CreateNote stores a new note under a freshly generated id.
// Returns KindInternal on database errors.
func (s *SQLStore) CreateNote(ctx context.Context, arg CreateNoteParams) (Note, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Note{}, newOpError(opCreateNote, KindInternal, entNote, err)
	}

	note, err := s.createNote(ctx, createNoteParams{
		ID:    pgUUID(id),
		Title: arg.Title,
		Body:  arg.Body,
	})
	if err != nil {
		return Note{}, sqlError(opCreateNote, entNote, id, err)
	}

	return note, nil
}
