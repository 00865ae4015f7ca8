package search

import (
	"errors"
	"fmt"
)

// ErrFetchFailure matches every error returned by Client.Search.
var ErrFetchFailure = errors.New("search fetch failed")

// ErrInvalidProxyAddress is returned when a proxy address is not "host:port".
var ErrInvalidProxyAddress = errors.New("invalid proxy address: expected host:port")

// ErrUnexpectedStatus is wrapped by FetchError for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// ErrInvalidEncoding is wrapped by FetchError when the body is not UTF-8.
var ErrInvalidEncoding = errors.New("response is not valid UTF-8")

// FetchError describes why a search request produced no page.
type FetchError struct {
	// Query is the search text that was requested.
	Query string

	// URL is the request URL, empty if it could not be built.
	URL string

	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *FetchError) Error() string {
	return fmt.Sprintf("search for %q failed: %v", e.Query, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports ErrFetchFailure as a match so callers can classify
// without a type assertion.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailure
}
