package storage

import (
	"context"
	"errors"
	"fmt"
)

// Store represents a remote key-value document store that can be written to.
type Store interface {
	// Put should return a *StatusError if the remote answered with anything
	// other than 200 OK.
	Put(ctx context.Context, key, value string) (err error)
}

var (
	// ErrNotFound indicates a key is not in the store.
	ErrNotFound = errors.New("not found")

	// ErrMissingToken indicates a store requiring a bearer token was
	// constructed without one.
	ErrMissingToken = errors.New("missing token")
)

// StatusError is returned when the remote rejects a write. Code is the HTTP
// status code and Body the raw response body.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}
