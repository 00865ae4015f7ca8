package config

import (
	"path/filepath"
	"slices"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/tripscout/internal/database"
	"github.com/nao1215/tripscout/internal/extract"
	"github.com/nao1215/tripscout/internal/search"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "tripscout"

	// DefaultEndpoint is the search page queried for suggestions.
	DefaultEndpoint = search.DefaultEndpoint

	// DefaultLanguage is sent as the hl parameter to keep result markup stable.
	DefaultLanguage = search.DefaultLanguage

	// DefaultTimeout bounds the search request. The request fails instead of
	// blocking once it elapses.
	DefaultTimeout = search.DefaultTimeout

	// DefaultUserAgent is sent with the search request.
	DefaultUserAgent = search.DefaultUserAgent

	// DefaultMaxResults is the number of suggestions kept per trip.
	DefaultMaxResults = search.DefaultMaxResults

	// DefaultMaxBodySize limits the search response body read into memory.
	DefaultMaxBodySize = search.DefaultMaxBodySize

	// DefaultExtractor is the extraction strategy name.
	DefaultExtractor = string(extract.KindRegex)

	// DefaultDBFileName is the store file name inside the data directory.
	DefaultDBFileName = database.DefaultFileName
)

// Demo trip defaults. Running the program without arguments stores this trip.
const (
	DefaultDestination = "Madrid"
	DefaultStartDate   = "2025-09-26"
	DefaultEndDate     = "2025-09-28"
	DefaultQuery       = "Madrid travel 26-28 September 2025"
)

// TripConfig describes the trip the demo searches for and stores.
type TripConfig struct {
	// Destination is stored verbatim.
	Destination string `yaml:"destination,omitempty"`

	// StartDate and EndDate are stored as plain text without validation.
	StartDate string `yaml:"startDate,omitempty"`
	EndDate   string `yaml:"endDate,omitempty"`

	// Query is the search text. Empty means it is derived from Destination.
	Query string `yaml:"query,omitempty"`
}

// SearchQuery returns Query, or the destination followed by "travel" when
// no explicit query is set.
func (t TripConfig) SearchQuery() string {
	if t.Query != "" {
		return t.Query
	}
	return t.Destination + " travel"
}

// Config holds all configuration options for tripscout.
// It is populated from defaults, the optional config file and CLI flags,
// then passed explicitly to the components that need it.
type Config struct {
	// Endpoint is the search endpoint URL.
	Endpoint string

	// Language is the hl query parameter. Empty omits it.
	Language string

	// Timeout bounds the search request.
	Timeout time.Duration

	// UserAgent is sent with the search request.
	UserAgent string

	// MaxResults is the maximum number of suggestions kept.
	// Zero is allowed and stores the trip without suggestions.
	MaxResults int

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// Extractor names the extraction strategy: regex, html or json.
	Extractor string

	// JSONPaths locate results when Extractor is json.
	JSONPaths extract.JSONPaths

	// ProxyAddress routes the search through a SOCKS5 proxy ("host:port").
	// Empty means a direct connection.
	ProxyAddress string

	// Fallback replaces a failed search with one placeholder suggestion.
	// When false, a failed search aborts the run.
	Fallback bool

	// DBPath is the SQLite store file.
	DBPath string

	// ConfigFilePath is the explicit config file path, if any.
	ConfigFilePath string

	// Verbose enables debug logging.
	Verbose bool

	// Trip is the demo trip.
	Trip TripConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Endpoint:    DefaultEndpoint,
		Language:    DefaultLanguage,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxResults:  DefaultMaxResults,
		MaxBodySize: DefaultMaxBodySize,
		Extractor:   DefaultExtractor,
		JSONPaths:   extract.DefaultJSONPaths(),
		Fallback:    true,
		DBPath:      DefaultDBPath(),
		Trip: TripConfig{
			Destination: DefaultDestination,
			StartDate:   DefaultStartDate,
			EndDate:     DefaultEndDate,
			Query:       DefaultQuery,
		},
	}
}

// XDGDataDir returns the XDG data directory for tripscout.
// On Linux: ~/.local/share/tripscout
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for tripscout.
// On Linux: ~/.config/tripscout
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultDBPath returns the store file inside the XDG data directory.
func DefaultDBPath() string {
	return filepath.Join(XDGDataDir(), DefaultDBFileName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the package sentinel errors.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return ErrEmptyEndpoint
	}

	// A zero timeout would make every request fail immediately.
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxResults < 0 {
		return ErrInvalidMaxResults
	}

	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}

	if !slices.Contains(extract.Kinds(), extract.Kind(c.Extractor)) {
		return ErrInvalidExtractor
	}

	if c.ProxyAddress != "" && !search.IsValidProxyAddress(c.ProxyAddress) {
		return ErrInvalidProxyAddress
	}

	if c.DBPath == "" {
		return ErrEmptyDBPath
	}

	if c.Trip.Destination == "" {
		return ErrEmptyDestination
	}

	return nil
}
