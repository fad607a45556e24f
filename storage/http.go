package storage

import (
	"context"
	"io"
	"net/http"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
)

// newClient returns an HTTP client that never retries: each write is issued
// exactly once and its outcome is reported as is.
func newClient(o options) *retryablehttp.Client {
	return &retryablehttp.Client{
		HTTPClient:   &http.Client{Transport: o.transport},
		Logger:       leveledLogger{entry: o.logger},
		Backoff:      retryablehttp.DefaultBackoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
		CheckRetry: func(_ context.Context, _ *http.Response, err error) (bool, error) {
			return false, err
		},
	}
}

// readResponse consumes the response body and turns anything but 200 OK into a
// *StatusError.
func readResponse(response *http.Response, err error) error {
	if response != nil && response.Body != nil {
		defer func() {
			_ = response.Body.Close()
		}()
	}
	if err != nil {
		return err
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if response.StatusCode != http.StatusOK {
		return &StatusError{Code: response.StatusCode, Body: body}
	}
	return nil
}

// leveledLogger adapts a logrus entry to retryablehttp.LeveledLogger.
type leveledLogger struct {
	entry *log.Entry
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Error(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Info(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Debug(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.with(keysAndValues).Warn(msg)
}

func (l leveledLogger) with(keysAndValues []interface{}) *log.Entry {
	fields := make(log.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return l.entry.WithFields(fields)
}
