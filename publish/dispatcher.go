// Package publish sends update requests to a remote document store: one
// validated request, one write.
package publish

import (
	"context"
	"errors"

	"github.com/nicolagi/metapub/storage"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrMissingTarget indicates a request without a target identifier.
	ErrMissingTarget = errors.New("missing target")

	// ErrMissingContent indicates a request without content.
	ErrMissingContent = errors.New("missing content")
)

// Request is an update to a remote document. Target identifies the document
// (a gist id or a storage id). Actor is only meaningful for gists.
type Request struct {
	Target  string
	Content string
	Actor   string
}

// Validate returns an error if the request cannot be sent.
func (r Request) Validate() error {
	if r.Target == "" {
		return ErrMissingTarget
	}
	if r.Content == "" {
		return ErrMissingContent
	}
	return nil
}

// Outcome describes a successful update. Key is the store key that was
// written: a file name for gists, the storage id for the JSON storage service.
type Outcome struct {
	Target string
	Key    string
}

// Dispatcher writes requests to a store, exactly once each.
type Dispatcher struct {
	store   storage.Store
	resolve func(Request) string
}

// NewGistDispatcher returns a dispatcher writing request contents to the gist
// file chosen by ResolveFileName. The store must be bound to the request's
// gist.
func NewGistDispatcher(store storage.Store) *Dispatcher {
	return &Dispatcher{
		store: store,
		resolve: func(r Request) string {
			return ResolveFileName(r.Actor)
		},
	}
}

// NewStorageDispatcher returns a dispatcher writing request contents to the
// document with the request's storage id.
func NewStorageDispatcher(store storage.Store) *Dispatcher {
	return &Dispatcher{
		store: store,
		resolve: func(r Request) string {
			return r.Target
		},
	}
}

// Publish validates the request and performs the write. Errors from the store
// are returned unchanged, so a rejected write can be inspected as a
// *storage.StatusError.
func (d *Dispatcher) Publish(ctx context.Context, r Request) (Outcome, error) {
	if err := r.Validate(); err != nil {
		return Outcome{}, err
	}
	key := d.resolve(r)
	logger := log.WithFields(log.Fields{
		"target": r.Target,
		"key":    key,
	})
	if err := d.store.Put(ctx, key, r.Content); err != nil {
		logger.WithField("err", err).Debug("Update failed")
		return Outcome{}, err
	}
	logger.Debug("Updated")
	return Outcome{Target: r.Target, Key: key}, nil
}
