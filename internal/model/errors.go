package model

import (
	"errors"
	"fmt"
)

// ErrDuplicate reports an insert for an external id that is already stored.
// Callers treat it as benign: the posting is counted as existing, not failed.
var ErrDuplicate = errors.New("posting already exists")

// HTTPError wraps a non-success status from the listing API.
type HTTPError struct {
	StatusCode int
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// StorageError wraps any persistence fault other than a duplicate key.
// A single failing record is logged and skipped, never fatal to a run.
type StorageError struct {
	Op  string // store operation that failed
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
