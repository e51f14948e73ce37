package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const opDeleteNote = "delete-note"

// DeleteNote removes a note permanently.
// Returns KindNotFound if the note does not exist, or KindInternal on database errors.
func (s *SQLStore) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	_, err := s.deleteNote(ctx, pgUUID(noteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundError(opDeleteNote, entNote, noteID)
		}

		return sqlError(opDeleteNote, entNote, noteID, err)
	}

	return nil
}
