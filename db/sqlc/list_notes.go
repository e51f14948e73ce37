package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const opListNotes = "list-notes"

type ListNotesParams struct {
	Limit  int32
	Offset int32
}

type ListNotesResult struct {
	Notes []Note `json:"notes"`
	Total int64  `json:"total"`
}

// ListNotes returns a page of notes, most recently updated first, together
// with the total number of stored notes.
// Returns KindInvalid for a non-positive limit or a negative offset, or
// KindInternal on database errors.
func (s *SQLStore) ListNotes(ctx context.Context, arg ListNotesParams) (ListNotesResult, error) {
	if arg.Limit <= 0 || arg.Offset < 0 {
		return ListNotesResult{}, newOpError(
			opListNotes,
			KindInvalid,
			entNote,
			fmt.Errorf("limit=%d offset=%d: %w", arg.Limit, arg.Offset, ErrInvalidPage),
		)
	}

	var result ListNotesResult

	err := s.execTx(ctx, func(q *Queries) error {
		notes, err := q.listNotes(ctx, listNotesParams{
			Limit:  arg.Limit,
			Offset: arg.Offset,
		})
		if err != nil {
			return sqlError(opListNotes, entNote, uuid.Nil, err)
		}

		total, err := q.countNotes(ctx)
		if err != nil {
			return sqlError(opListNotes, entNote, uuid.Nil, err)
		}

		result = ListNotesResult{Notes: notes, Total: total}
		return nil
	})

	if err != nil {
		var opErr *OpError
		if errors.As(err, &opErr) {
			return ListNotesResult{}, err
		}

		return ListNotesResult{}, sqlError(opListNotes, entNote, uuid.Nil, err)
	}

	return result, nil
}
