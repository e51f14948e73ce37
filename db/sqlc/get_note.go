package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const opGetNote = "get-note"

// GetNote returns KindNotFound if the note does not exist, or KindInternal on database errors.
func (s *SQLStore) GetNote(ctx context.Context, noteID uuid.UUID) (Note, error) {
	note, err := s.getNote(ctx, pgUUID(noteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Note{}, notFoundError(opGetNote, entNote, noteID)
		}

		return Note{}, sqlError(opGetNote, entNote, noteID, err)
	}

	return note, nil
}
