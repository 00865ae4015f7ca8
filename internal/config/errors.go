package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() while users still get a readable message.
var (
	// ErrEmptyEndpoint is returned when no search endpoint is configured.
	ErrEmptyEndpoint = errors.New("invalid search endpoint: must not be empty")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxResults is returned when the result bound is negative.
	ErrInvalidMaxResults = errors.New("invalid max results: must be non-negative")

	// ErrInvalidMaxBodySize is returned when the body size limit is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrInvalidExtractor is returned for an unknown extraction strategy.
	ErrInvalidExtractor = errors.New("invalid extractor: must be one of regex, html, json")

	// ErrInvalidProxyAddress is returned when the proxy is not "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address: expected host:port")

	// ErrEmptyDBPath is returned when no store location is configured.
	ErrEmptyDBPath = errors.New("invalid database path: must not be empty")

	// ErrEmptyDestination is returned when the demo trip has no destination.
	ErrEmptyDestination = errors.New("invalid trip: destination must not be empty")
)
