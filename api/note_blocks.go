package api

import (
	"net/http"
	"time"

	db "github.com/King0lightai/JT-Power-Tools-sub005/db/sqlc"
	"github.com/King0lightai/JT-Power-Tools-sub005/notetext"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NoteBlocksResponse struct {
	NoteID    uuid.UUID        `json:"note_id"`
	UpdatedAt time.Time        `json:"updated_at"`
	Blocks    []notetext.Block `json:"blocks"`
}

// getNoteBlocks opens an editing session: the stored markup is parsed into the
// editable block tree.
func (s *Service) getNoteBlocks(ctx *gin.Context) {
	noteID := extractNoteIDFromCtx(ctx)

	note, err := s.store.GetNote(ctx, noteID)
	if err != nil {
		respondStoreError(ctx, err, noteID)
		return
	}

	ctx.JSON(http.StatusOK, NoteBlocksResponse{
		NoteID:    note.ID,
		UpdatedAt: note.UpdatedAt,
		Blocks:    s.engine.ParseForEditor(note.Body),
	})
}

// putNoteBlocks saves an editing session: the tree is serialized back to markup,
// which replaces the note body. The response carries the tree of the stored text.
func (s *Service) putNoteBlocks(ctx *gin.Context) {
	var req SerializeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if fields := validateBlocks(req.Blocks); len(fields) > 0 {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidBlocks, fields...))
		return
	}

	markup := notetext.Serialize(req.Blocks)
	if !s.checkMarkupSize(ctx, "blocks", markup) {
		return
	}

	noteID := extractNoteIDFromCtx(ctx)

	note, err := s.store.UpdateNote(ctx, db.UpdateNoteParams{
		ID:   noteID,
		Body: pgtype.Text{String: markup, Valid: true},
	})
	if err != nil {
		respondStoreError(ctx, err, noteID)
		return
	}

	s.dropPreview(ctx, noteID)

	ctx.JSON(http.StatusOK, NoteBlocksResponse{
		NoteID:    note.ID,
		UpdatedAt: note.UpdatedAt,
		Blocks:    s.engine.ParseForEditor(note.Body),
	})
}
