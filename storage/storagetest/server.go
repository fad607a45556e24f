// Package storagetest provides a fake remote document service, answering the
// writes of both storage.Gist and storage.RemoteStore.
//
// Every request is recorded. The server answers each request with the
// configured status code and body (200 and an empty JSON object by default).
// When the status is 200, the request body is also stored in Documents, keyed
// by request path, so tests can check what a client wrote.
package storagetest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/nicolagi/metapub/storage"
	log "github.com/sirupsen/logrus"
)

// Request is a request as received by the server.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Server is a running fake service. Its URL is the base URL to give a store.
type Server struct {
	*httptest.Server

	// Documents holds the body of every accepted write.
	Documents *storage.InMemoryStore

	status int
	body   []byte

	mu       sync.Mutex
	requests []Request
}

// ServerOption configures a Server in NewServer.
type ServerOption func(*Server)

// WithResponse makes the server answer every request with the given status
// code and body.
func WithResponse(status int, body string) ServerOption {
	return func(s *Server) {
		s.status = status
		s.body = []byte(body)
	}
}

// NewServer starts a server that is closed when the test finishes.
func NewServer(t *testing.T, opts ...ServerOption) *Server {
	s := &Server{
		Documents: storage.NewInMemoryStore(),
		status:    http.StatusOK,
		body:      []byte("{}"),
	}
	for _, o := range opts {
		o(s)
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	logger := log.WithFields(log.Fields{
		"op":   r.Method,
		"path": r.URL.Path,
	})
	status, body := func() (int, []byte) {
		value, err := io.ReadAll(r.Body)
		if err != nil {
			logger.WithField("err", err).Error()
			return http.StatusInternalServerError, []byte(err.Error())
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   value,
		})
		s.mu.Unlock()
		if s.status != http.StatusOK {
			logger.WithField("status", s.status).Debug("Rejecting")
			return s.status, s.body
		}
		if err := s.Documents.Put(context.Background(), r.URL.Path, string(value)); err != nil {
			logger.WithField("err", err).Error()
			return http.StatusInternalServerError, []byte(err.Error())
		}
		logger.Debug("Success")
		return s.status, s.body
	}()
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.WithField("err", err).Error("Failed writing response")
	}
}

// Requests returns the requests received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	requests := make([]Request, len(s.requests))
	copy(requests, s.requests)
	return requests
}
