package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/nicolagi/metapub/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, storageURL string) string {
	pathname := filepath.Join(t.TempDir(), "storepub.config")
	contents := fmt.Sprintf("{\n\tstorage_url: %q\n}\n", storageURL)
	require.Nil(t, os.WriteFile(pathname, []byte(contents), 0600))
	return pathname
}

func TestRun(t *testing.T) {
	t.Run("missing arguments", func(t *testing.T) {
		testCases := []struct {
			name string
			args []string
		}{
			{name: "no content", args: []string{"--storage-id", "abc123"}},
			{name: "empty content", args: []string{"--storage-id", "abc123", "--file-content", ""}},
			{name: "no storage id", args: []string{"--file-content", "hello"}},
			{name: "unknown flag", args: []string{"--storage-id", "abc123", "--gist-id", "f00d"}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				srv := storagetest.NewServer(t)
				var stdout bytes.Buffer
				args := append([]string{"--config", writeConfig(t, srv.URL)}, tc.args...)
				code := run(context.Background(), args, &stdout)
				assert.Equal(t, 1, code)
				assert.Contains(t, stdout.String(), "Usage of storepub:")
				assert.Contains(t, stdout.String(), "--file-content")
				assert.Empty(t, srv.Requests())
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		srv := storagetest.NewServer(t)
		var stdout bytes.Buffer
		code := run(context.Background(), []string{
			"--config", writeConfig(t, srv.URL),
			"--storage-id", "abc123",
			"--file-content", "hello",
		}, &stdout)
		assert.Equal(t, 0, code)
		assert.Equal(t, "Storage 'abc123' updated successfully\n", stdout.String())

		requests := srv.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, http.MethodPut, requests[0].Method)
		assert.Equal(t, "/abc123", requests[0].Path)
		assert.JSONEq(t, `{"data": "hello", "source": "GitHub Actions"}`, string(requests[0].Body))
	})

	t.Run("not found", func(t *testing.T) {
		srv := storagetest.NewServer(t, storagetest.WithResponse(http.StatusNotFound, `{"message":"Not Found"}`))
		var stdout bytes.Buffer
		code := run(context.Background(), []string{
			"--config", writeConfig(t, srv.URL),
			"--storage-id", "abc123",
			"--file-content", "hello",
		}, &stdout)
		assert.NotEqual(t, 0, code)
		assert.Contains(t, stdout.String(), "Failed to update storage: 404")
		assert.Contains(t, stdout.String(), `{"message":"Not Found"}`)
	})

	t.Run("unreachable service", func(t *testing.T) {
		srv := storagetest.NewServer(t)
		srv.Close()
		var stdout bytes.Buffer
		code := run(context.Background(), []string{
			"--config", writeConfig(t, srv.URL),
			"--storage-id", "abc123",
			"--file-content", "hello",
		}, &stdout)
		assert.Equal(t, 1, code)
		assert.NotContains(t, stdout.String(), "updated successfully")
	})
}

func TestLoadConfig(t *testing.T) {
	c, err := loadConfig("")
	require.Nil(t, err)
	c.applyDefaultsForMissingProperties()
	assert.Equal(t, "https://jsonblob.com/api/jsonBlob", c.StorageURL)
}
