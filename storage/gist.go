package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v65/github"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// DefaultGistURL is the base endpoint of the GitHub REST API.
const DefaultGistURL = "https://api.github.com/"

// Gist implements Store backed by the files of a single GitHub gist. Keys are
// file names, values are file contents.
type Gist struct {
	id     string
	opts   options
	client *github.Client

	// Sends requests built by client. Kept separately so that rejected writes
	// can be reported with their raw body.
	http *http.Client
}

// NewGist returns a store writing to the gist with the given id, authenticated
// with token. It returns ErrMissingToken if token is empty.
func NewGist(id, token string, opts ...Option) (*Gist, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	o := newOptions(DefaultGistURL, opts)
	baseURL, err := url.Parse(o.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", o.baseURL, err)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}
	// Tokens used here never expire.
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   newClient(o).StandardClient().Transport,
		},
	}
	client := github.NewClient(httpClient)
	client.BaseURL = baseURL
	return &Gist{
		id:     id,
		opts:   o,
		client: client,
		http:   httpClient,
	}, nil
}

// Put sets the content of the named file, leaving the other files of the gist
// untouched.
func (g *Gist) Put(ctx context.Context, filename, content string) (err error) {
	edit := &github.Gist{
		Files: map[github.GistFilename]github.GistFile{
			github.GistFilename(filename): {Content: github.String(content)},
		},
	}
	request, err := g.client.NewRequest(http.MethodPatch, "gists/"+url.PathEscape(g.id), edit)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/vnd.github+json")
	g.opts.logger.WithFields(log.Fields{
		"op":   request.Method,
		"gist": g.id,
		"file": filename,
	}).Debug("Sending")
	return readResponse(g.http.Do(request.WithContext(ctx)))
}
