// Package repository defines error types that are reused across the data
// access layer.  Handlers use errors.Is / errors.As on these values to pick
// the response status without ever inspecting driver errors directly.
package repository

import (
	"errors"
	"fmt"
)

// ErrStateNotFound is returned when an exact-id lookup matches no row.
// Handlers should translate this into an HTTP 404 response.
var ErrStateNotFound = errors.New("state not found")

// DataSourceError wraps any failure reaching or querying the store.  The
// wrapped error is meant for logs only; handlers should translate this into
// an HTTP 500 response with a fixed message.
type DataSourceError struct {
	Op  string // list or get
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("states %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// IsDataSourceError reports whether err is, or wraps, a *DataSourceError.
func IsDataSourceError(err error) bool {
	var dse *DataSourceError
	return errors.As(err, &dse)
}
