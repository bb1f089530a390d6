package content

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrStoreUnavailable = errors.New("content: record store unavailable")
	ErrKeyRequired      = errors.New("content: scope key is required")
	ErrRecordNotFound   = errors.New("content: record not found")
)

// RecordNotFoundError captures a miss for an individual record lookup. A
// scoped list query that matches nothing is not an error; it returns an empty
// slice.
type RecordNotFoundError struct {
	Type Type
	ID   uuid.UUID
}

func (e *RecordNotFoundError) Error() string {
	if e == nil {
		return ErrRecordNotFound.Error()
	}
	return fmt.Sprintf("%s: type=%s id=%s", ErrRecordNotFound.Error(), e.Type, e.ID)
}

func (e *RecordNotFoundError) Unwrap() error {
	return ErrRecordNotFound
}
