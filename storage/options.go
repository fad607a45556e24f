package storage

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

type options struct {
	baseURL   string
	transport http.RoundTripper
	logger    *log.Entry
}

type Option func(*options)

// WithBaseURL overrides the service endpoint, e.g., to point a store at a test
// server.
func WithBaseURL(value string) Option {
	return func(o *options) {
		o.baseURL = value
	}
}

// WithTransport sets the transport under the store's HTTP client.
func WithTransport(value http.RoundTripper) Option {
	return func(o *options) {
		o.transport = value
	}
}

func WithLogger(value *log.Entry) Option {
	return func(o *options) {
		o.logger = value
	}
}

func newOptions(baseURL string, opts []Option) options {
	o := options{
		baseURL:   baseURL,
		transport: http.DefaultTransport,
		logger:    log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
