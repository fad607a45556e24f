package storage_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/nicolagi/metapub/storage"
	"github.com/nicolagi/metapub/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteStore(t *testing.T) {
	t.Run("puts the whole document", func(t *testing.T) {
		srv := storagetest.NewServer(t)
		store := storage.NewRemoteStore(storage.WithBaseURL(srv.URL))
		require.Nil(t, store.Put(context.Background(), "abc123", "hello"))

		requests := srv.Requests()
		require.Len(t, requests, 1)
		r := requests[0]
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/abc123", r.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "GitHub Actions", r.Header.Get("User-Agent"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.JSONEq(t, `{"data": "hello", "source": "GitHub Actions"}`, string(r.Body))

		stored, err := srv.Documents.Get("/abc123")
		require.Nil(t, err)
		assert.Equal(t, `{"data":"hello","source":"GitHub Actions"}`, stored)
	})
	t.Run("base url with trailing slash", func(t *testing.T) {
		srv := storagetest.NewServer(t)
		store := storage.NewRemoteStore(storage.WithBaseURL(srv.URL + "/api/jsonBlob/"))
		require.Nil(t, store.Put(context.Background(), "abc123", "hello"))
		requests := srv.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, "/api/jsonBlob/abc123", requests[0].Path)
	})
}
