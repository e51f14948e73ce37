package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists note bodies. The markup text is the only stored artifact;
// block trees are derived from it on demand.
type Store interface {
	CreateNote(ctx context.Context, arg CreateNoteParams) (Note, error)
	GetNote(ctx context.Context, noteID uuid.UUID) (Note, error)
	UpdateNote(ctx context.Context, arg UpdateNoteParams) (Note, error)
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
	ListNotes(ctx context.Context, arg ListNotesParams) (ListNotesResult, error)
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}
