package api

import (
	"fmt"
	"net/http"

	db "github.com/King0lightai/JT-Power-Tools-sub005/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// respondStoreError maps a store failure onto an HTTP status.
// Internal details are logged and never sent to the client.
func respondStoreError(ctx *gin.Context, err error, noteID uuid.UUID) {
	switch db.ErrorKind(err) {
	case db.KindNotFound:
		errField := ErrorField{
			FieldName:    "note_id",
			ErrorMessage: fmt.Sprintf("Note with ID [%s] does not exist", noteID),
		}
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrNoteNotFound, errField))

	case db.KindInvalid:
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ErrorField{
			FieldName:    "request",
			ErrorMessage: err.Error(),
		}))

	default:
		_ = ctx.Error(err)
		log.Error().Err(err).Str("note_id", noteID.String()).Msg("store operation failed")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrInternalServer))
	}
}
