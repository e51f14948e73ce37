package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const opUpdateNote = "update-note"

// UpdateNoteParams leaves a field untouched when its Valid flag is false.
type UpdateNoteParams struct {
	ID    uuid.UUID
	Title pgtype.Text
	Body  pgtype.Text
}

// UpdateNote changes the title and/or body of a note and bumps its updated_at.
// Returns KindInvalid if neither field is set, KindNotFound if the note does
// not exist, or KindInternal on database errors.
func (s *SQLStore) UpdateNote(ctx context.Context, arg UpdateNoteParams) (Note, error) {
	if !arg.Title.Valid && !arg.Body.Valid {
		return Note{}, newOpError(opUpdateNote, KindInvalid, entNote, ErrEmptyUpdate, withEntityID(arg.ID))
	}

	note, err := s.updateNote(ctx, updateNoteParams{
		ID:    pgUUID(arg.ID),
		Title: arg.Title,
		Body:  arg.Body,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Note{}, notFoundError(opUpdateNote, entNote, arg.ID)
		}

		return Note{}, sqlError(opUpdateNote, entNote, arg.ID, err)
	}

	return note, nil
}
