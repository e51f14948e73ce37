package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrEmptyUpdate    = errors.New("update has no fields to change")
	ErrInvalidPage    = errors.New("limit must be positive and offset must not be negative")
)

// Kind classifies a store failure so that callers can map it without
// inspecting driver errors.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	default:
		return "internal"
	}
}

const entNote = "note"

// OpError is returned by every exported store method.
type OpError struct {
	Op       string
	Kind     Kind
	Entity   string
	EntityID uuid.UUID
	Err      error
}

func (e *OpError) Error() string {
	if e.EntityID == uuid.Nil {
		return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Entity, e.Kind, e.Err)
	}

	return fmt.Sprintf("%s: %s %s (id=%s): %v", e.Op, e.Entity, e.Kind, e.EntityID, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

type opErrorOption func(*OpError)

func withEntityID(id uuid.UUID) opErrorOption {
	return func(e *OpError) {
		e.EntityID = id
	}
}

func newOpError(op string, kind Kind, entity string, err error, opts ...opErrorOption) *OpError {
	opErr := &OpError{
		Op:     op,
		Kind:   kind,
		Entity: entity,
		Err:    err,
	}

	for _, opt := range opts {
		opt(opErr)
	}

	return opErr
}

func notFoundError(op, entity string, id uuid.UUID) *OpError {
	return newOpError(
		op,
		KindNotFound,
		entity,
		fmt.Errorf("%s with id %s: %w", entity, id, ErrEntityNotFound),
		withEntityID(id),
	)
}

func sqlError(op, entity string, id uuid.UUID, err error) *OpError {
	return newOpError(op, KindInternal, entity, fmt.Errorf("query failed: %w", err), withEntityID(id))
}

// ErrorKind extracts the Kind of a store error. Errors that did not come from
// the store are reported as KindInternal.
func ErrorKind(err error) Kind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}

	return KindInternal
}
