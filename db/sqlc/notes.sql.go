package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const noteColumns = `id, title, body, created_at, updated_at`

const createNote = `-- name: CreateNote :one
INSERT INTO notes (id, title, body)
VALUES ($1, $2, $3)
RETURNING ` + noteColumns

type createNoteParams struct {
	ID    pgtype.UUID
	Title string
	Body  string
}

func (q *Queries) createNote(ctx context.Context, arg createNoteParams) (Note, error) {
	row := q.db.QueryRow(ctx, createNote, arg.ID, arg.Title, arg.Body)
	return scanNote(row)
}

const getNote = `-- name: GetNote :one
SELECT ` + noteColumns + `
FROM notes
WHERE id = $1`

func (q *Queries) getNote(ctx context.Context, id pgtype.UUID) (Note, error) {
	row := q.db.QueryRow(ctx, getNote, id)
	return scanNote(row)
}

const updateNote = `-- name: UpdateNote :one
UPDATE notes
SET
  title = COALESCE($2, title),
  body = COALESCE($3, body),
  updated_at = now()
WHERE id = $1
RETURNING ` + noteColumns

type updateNoteParams struct {
	ID    pgtype.UUID
	Title pgtype.Text
	Body  pgtype.Text
}

func (q *Queries) updateNote(ctx context.Context, arg updateNoteParams) (Note, error) {
	row := q.db.QueryRow(ctx, updateNote, arg.ID, arg.Title, arg.Body)
	return scanNote(row)
}

const deleteNote = `-- name: DeleteNote :one
DELETE FROM notes
WHERE id = $1
RETURNING id`

func (q *Queries) deleteNote(ctx context.Context, id pgtype.UUID) (pgtype.UUID, error) {
	row := q.db.QueryRow(ctx, deleteNote, id)
	var deleted pgtype.UUID
	err := row.Scan(&deleted)
	return deleted, err
}

const listNotes = `-- name: ListNotes :many
SELECT ` + noteColumns + `
FROM notes
ORDER BY updated_at DESC, id
LIMIT $1
OFFSET $2`

type listNotesParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) listNotes(ctx context.Context, arg listNotesParams) ([]Note, error) {
	rows, err := q.db.Query(ctx, listNotes, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Note{}
	for rows.Next() {
		i, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

const countNotes = `-- name: CountNotes :one
SELECT count(*) FROM notes`

func (q *Queries) countNotes(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countNotes)
	var count int64
	err := row.Scan(&count)
	return count, err
}

func scanNote(row pgx.Row) (Note, error) {
	var (
		i  Note
		id pgtype.UUID
	)

	err := row.Scan(&id, &i.Title, &i.Body, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return Note{}, err
	}

	i.ID = uuid.UUID(id.Bytes)
	return i, nil
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}
