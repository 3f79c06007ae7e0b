package cms

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches a ReadError for a 404 response.
var ErrNotFound = errors.New("content not found")

// WriteError is returned when a collection write fails. StatusCode is 0
// when no HTTP response was received (timeout, connection refused, ...).
type WriteError struct {
	Collection string
	ID         string
	StatusCode int
	Body       string
	Err        error
}

func (e *WriteError) Error() string {
	target := "/" + e.Collection
	if e.ID != "" {
		target += "/" + e.ID
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("PUT %s failed: %d %s", target, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("PUT %s failed: %v", target, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// UploadError is returned when the media endpoint rejects a file or cannot
// be reached.
type UploadError struct {
	File       string
	StatusCode int
	Body       string
	Err        error
}

func (e *UploadError) Error() string {
	if e.StatusCode != 0 && e.Err == nil {
		return fmt.Sprintf("image upload failed (%s): %d %s", e.File, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("image upload failed (%s): %v", e.File, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// ReadError is returned when a collection read fails.
type ReadError struct {
	Collection string
	StatusCode int
	Body       string
	Err        error
}

func (e *ReadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET /%s failed: %d %s", e.Collection, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("GET /%s failed: %v", e.Collection, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// isRetryableStatus reports whether a write should be attempted again.
func isRetryableStatus(status int) bool {
	return status == 0 || status == http.StatusTooManyRequests || status >= 500
}
