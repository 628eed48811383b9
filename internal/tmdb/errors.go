package tmdb

import (
	"errors"
	"fmt"
)

// Sentinel errors for TMDB API operations.
var (
	ErrNotFound     = errors.New("tmdb: not found")
	ErrUnauthorized = errors.New("tmdb: invalid api key")
	ErrRateLimited  = errors.New("tmdb: rate limited by server")
	ErrBadRequest   = errors.New("tmdb: bad request")
	ErrServer       = errors.New("tmdb: server error")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op   string // Operation: "discover", "details", "search", ...
	Path string // Request path without query
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("tmdb %s [%s]: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapError(op, path string, err error) error {
	return &Error{Op: op, Path: path, Err: err}
}
