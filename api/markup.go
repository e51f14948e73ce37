package api

import (
	"fmt"
	"net/http"

	"github.com/King0lightai/JT-Power-Tools-sub005/notetext"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

type MarkupRequest struct {
	Markup string `json:"markup"`
}

type BlocksResponse struct {
	Blocks []notetext.Block `json:"blocks"`
}

type SerializeRequest struct {
	Blocks []notetext.Block `json:"blocks" binding:"required"`
}

type MarkupResponse struct {
	Markup string `json:"markup"`
}

type PreviewResponse struct {
	HTML   string `json:"html"`
	Cached bool   `json:"cached"`
}

type LintResponse struct {
	Warnings []notetext.Warning `json:"warnings"`
}

// FormatsResponse mirrors notetext.FormatState with a null color when no color
// tag applies.
type FormatsResponse struct {
	Bold          bool    `json:"bold"`
	Italic        bool    `json:"italic"`
	Underline     bool    `json:"underline"`
	Strikethrough bool    `json:"strikethrough"`
	Color         *string `json:"color"`
	JustifyCenter bool    `json:"justify_center"`
	JustifyRight  bool    `json:"justify_right"`
}

func newFormatsResponse(st notetext.FormatState) FormatsResponse {
	res := FormatsResponse{
		Bold:          st.Bold,
		Italic:        st.Italic,
		Underline:     st.Underline,
		Strikethrough: st.Strikethrough,
		JustifyCenter: st.JustifyCenter,
		JustifyRight:  st.JustifyRight,
	}
	if st.Color != "" {
		color := st.Color
		res.Color = &color
	}
	return res
}

type FormatsRequest struct {
	Markup         string `json:"markup"`
	SelectionStart *int   `json:"selection_start" binding:"required,min=0"`
	SelectionEnd   *int   `json:"selection_end" binding:"required,min=0"`
}

func (s *Service) parseMarkup(ctx *gin.Context) {
	var req MarkupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if !s.checkMarkupSize(ctx, "markup", req.Markup) {
		return
	}

	ctx.JSON(http.StatusOK, BlocksResponse{Blocks: s.engine.ParseForEditor(req.Markup)})
}

func (s *Service) serializeMarkup(ctx *gin.Context) {
	var req SerializeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if fields := validateBlocks(req.Blocks); len(fields) > 0 {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidBlocks, fields...))
		return
	}

	ctx.JSON(http.StatusOK, MarkupResponse{Markup: notetext.Serialize(req.Blocks)})
}

func (s *Service) previewMarkup(ctx *gin.Context) {
	var req MarkupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if !s.checkMarkupSize(ctx, "markup", req.Markup) {
		return
	}

	ctx.JSON(http.StatusOK, PreviewResponse{HTML: s.renderPreview(req.Markup)})
}

func (s *Service) detectFormats(ctx *gin.Context) {
	var req FormatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if !s.checkMarkupSize(ctx, "markup", req.Markup) {
		return
	}

	state := notetext.DetectActiveFormats(req.Markup, *req.SelectionStart, *req.SelectionEnd)
	ctx.JSON(http.StatusOK, newFormatsResponse(state))
}

func (s *Service) lintMarkup(ctx *gin.Context) {
	var req MarkupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if !s.checkMarkupSize(ctx, "markup", req.Markup) {
		return
	}

	ctx.JSON(http.StatusOK, LintResponse{Warnings: s.engine.Diagnose(req.Markup)})
}

// checkMarkupSize aborts with 413 when the text exceeds MaxNoteBytes.
// A zero limit disables the check.
func (s *Service) checkMarkupSize(ctx *gin.Context, field, markup string) bool {
	limit := s.config.MaxNoteBytes
	if limit <= 0 || len(markup) <= limit {
		return true
	}

	errField := ErrorField{
		FieldName: field,
		ErrorMessage: fmt.Sprintf(
			"text is %s, the limit is %s",
			humanize.IBytes(uint64(len(markup))),
			humanize.IBytes(uint64(limit)),
		),
	}
	ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrNoteTooLarge, errField))
	return false
}

// validateBlocks checks the parts of a block tree that the serializer relies on.
func validateBlocks(blocks []notetext.Block) []ErrorField {
	var fields []ErrorField

	for i, b := range blocks {
		prefix := fmt.Sprintf("blocks[%d]", i)

		if !b.Kind.Valid() {
			fields = append(fields, ErrorField{prefix + ".kind", fmt.Sprintf("unknown block kind %q", b.Kind)})
			continue
		}

		if b.Indent < 0 {
			fields = append(fields, ErrorField{prefix + ".indent", "must not be negative"})
		}

		if b.Kind == notetext.KindTable && len(b.Header) == 0 {
			fields = append(fields, ErrorField{prefix + ".header", "a table needs a header row"})
		}
	}

	return fields
}
