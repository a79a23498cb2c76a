package books

import (
	"errors"
	"fmt"
)

// Sentinel errors for Google Books API operations.
var (
	ErrNotFound    = errors.New("books: volume not found")
	ErrRateLimited = errors.New("books: rate limited by server")
	ErrBadRequest  = errors.New("books: bad request")
	ErrServer      = errors.New("books: server error")
	ErrEmptyQuery  = errors.New("books: empty search query")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op       string // "search" or "volume"
	VolumeID string // if applicable
	Err      error
}

func (e *Error) Error() string {
	if e.VolumeID != "" {
		return fmt.Sprintf("books %s [%s]: %v", e.Op, e.VolumeID, e.Err)
	}
	return fmt.Sprintf("books %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op, volumeID string, err error) error {
	return &Error{Op: op, VolumeID: volumeID, Err: err}
}
