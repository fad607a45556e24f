package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultStorageURL is the base endpoint of the JSON storage service.
	// Documents live at DefaultStorageURL + "/" + id.
	DefaultStorageURL = "https://jsonblob.com/api/jsonBlob"

	// Source tags every document written by RemoteStore.
	Source = "GitHub Actions"
)

// RemoteStore implements Store against a generic JSON storage service. Each
// put replaces the whole document at the given storage id.
type RemoteStore struct {
	opts   options
	client *retryablehttp.Client
}

type document struct {
	Data   string `json:"data"`
	Source string `json:"source"`
}

// NewRemoteStore returns a store writing to DefaultStorageURL, unless
// WithBaseURL says otherwise. The service needs no credentials.
func NewRemoteStore(opts ...Option) *RemoteStore {
	o := newOptions(DefaultStorageURL, opts)
	return &RemoteStore{
		opts:   o,
		client: newClient(o),
	}
}

// Put replaces the document with the given storage id.
func (r *RemoteStore) Put(ctx context.Context, id, content string) (err error) {
	body, err := json.Marshal(document{Data: content, Source: Source})
	if err != nil {
		return err
	}
	url := r.pathFor(id)
	request, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", Source)
	r.opts.logger.WithFields(log.Fields{
		"op":  request.Method,
		"url": url,
	}).Debug("Sending")
	return readResponse(r.client.Do(request))
}

func (r *RemoteStore) pathFor(id string) string {
	return strings.TrimSuffix(r.opts.baseURL, "/") + "/" + id
}
