package api

import "errors"

var (
	// api errors
	ErrInvalidParams  = errors.New("invalid params")
	ErrInvalidNoteID  = errors.New("invalid note id")
	ErrNoteNotFound   = errors.New("note not found")
	ErrNoteTooLarge   = errors.New("note body is too large")
	ErrInvalidBlocks  = errors.New("invalid block tree")
	ErrInternalServer = errors.New("internal server error")
)
