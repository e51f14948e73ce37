package db

import (
	"context"
	"testing"
	"time"

	"github.com/King0lightai/JT-Power-Tools-sub005/util"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func createRandomNote(t *testing.T, store Store) Note {
	t.Helper()

	arg := CreateNoteParams{
		Title: util.RandomNoteTitle(),
		Body:  util.RandomMarkup(),
	}

	note, err := store.CreateNote(context.Background(), arg)
	require.NoError(t, err)

	require.NotEqual(t, uuid.Nil, note.ID)
	require.Equal(t, arg.Title, note.Title)
	require.Equal(t, arg.Body, note.Body)
	require.WithinDuration(t, time.Now(), note.CreatedAt, 5*time.Second)
	require.Equal(t, note.CreatedAt, note.UpdatedAt)

	return note
}

func TestCreateNote(t *testing.T) {
	store := requireStore(t)
	createRandomNote(t, store)
}

func TestGetNote(t *testing.T) {
	store := requireStore(t)
	note := createRandomNote(t, store)

	got, err := store.GetNote(context.Background(), note.ID)
	require.NoError(t, err)
	require.Equal(t, note.ID, got.ID)
	require.Equal(t, note.Body, got.Body)
	require.WithinDuration(t, note.UpdatedAt, got.UpdatedAt, time.Millisecond)
}

func TestGetNote_NotFound(t *testing.T) {
	store := requireStore(t)
	missing := uuid.New()

	got, err := store.GetNote(context.Background(), missing)
	require.Error(t, err)
	require.Zero(t, got)

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, opGetNote, opErr.Op)
	require.Equal(t, KindNotFound, opErr.Kind)
	require.Equal(t, entNote, opErr.Entity)
	require.Equal(t, missing, opErr.EntityID)
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestUpdateNote_BodyOnly(t *testing.T) {
	store := requireStore(t)
	note := createRandomNote(t, store)

	body := "  - keeps leading indentation"
	updated, err := store.UpdateNote(context.Background(), UpdateNoteParams{
		ID:   note.ID,
		Body: pgtype.Text{String: body, Valid: true},
	})
	require.NoError(t, err)

	require.Equal(t, note.Title, updated.Title)
	require.Equal(t, body, updated.Body)
	require.True(t, updated.UpdatedAt.After(note.UpdatedAt))
}

func TestUpdateNote_TitleOnly(t *testing.T) {
	store := requireStore(t)
	note := createRandomNote(t, store)

	title := "  Renamed  "
	updated, err := store.UpdateNote(context.Background(), UpdateNoteParams{
		ID:    note.ID,
		Title: util.StringToPgxText(&title),
	})
	require.NoError(t, err)

	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, note.Body, updated.Body)
}

func TestUpdateNote_NotFound(t *testing.T) {
	store := requireStore(t)

	_, err := store.UpdateNote(context.Background(), UpdateNoteParams{
		ID:   uuid.New(),
		Body: pgtype.Text{String: "x", Valid: true},
	})
	require.Equal(t, KindNotFound, ErrorKind(err))
}

func TestDeleteNote(t *testing.T) {
	store := requireStore(t)
	note := createRandomNote(t, store)

	require.NoError(t, store.DeleteNote(context.Background(), note.ID))

	_, err := store.GetNote(context.Background(), note.ID)
	require.Equal(t, KindNotFound, ErrorKind(err))

	err = store.DeleteNote(context.Background(), note.ID)
	require.Equal(t, KindNotFound, ErrorKind(err))
}

func TestListNotes(t *testing.T) {
	store := requireStore(t)

	for range 3 {
		createRandomNote(t, store)
	}

	res, err := store.ListNotes(context.Background(), ListNotesParams{Limit: 3})
	require.NoError(t, err)
	require.Len(t, res.Notes, 3)
	require.GreaterOrEqual(t, res.Total, int64(3))

	for i := 1; i < len(res.Notes); i++ {
		require.False(t, res.Notes[i].UpdatedAt.After(res.Notes[i-1].UpdatedAt))
	}
}
