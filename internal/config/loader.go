package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/tripscout/internal/extract"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".tripscout"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .tripscout configuration file.
// Every field is optional; zero values keep the current setting.
type File struct {
	Search SearchFile `yaml:"search,omitempty"`

	Storage StorageFile `yaml:"storage,omitempty"`

	// Fallback is a pointer so an explicit false can be told apart from absence.
	Fallback *bool `yaml:"fallback,omitempty"`

	Trip TripConfig `yaml:"trip,omitempty"`
}

// SearchFile holds the search request settings of the config file.
type SearchFile struct {
	Endpoint    string            `yaml:"endpoint,omitempty"`
	Language    string            `yaml:"language,omitempty"`
	Timeout     time.Duration     `yaml:"timeout,omitempty"`
	UserAgent   string            `yaml:"userAgent,omitempty"`
	MaxResults  *int              `yaml:"maxResults,omitempty"`
	MaxBodySize int64             `yaml:"maxBodySize,omitempty"`
	Extractor   string            `yaml:"extractor,omitempty"`
	JSON        extract.JSONPaths `yaml:"json,omitempty"`
	Proxy       string            `yaml:"proxy,omitempty"`
}

// StorageFile holds the store settings of the config file.
type StorageFile struct {
	// Path is the SQLite file. A leading "~/" is expanded to the home directory.
	Path string `yaml:"path,omitempty"`
}

// LoadConfigFile loads a configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply overrides c with every value set in the file.
func (c *Config) Apply(cf *File) {
	if cf == nil {
		return
	}

	s := cf.Search
	if s.Endpoint != "" {
		c.Endpoint = s.Endpoint
	}
	if s.Language != "" {
		c.Language = s.Language
	}
	if s.Timeout != 0 {
		c.Timeout = s.Timeout
	}
	if s.UserAgent != "" {
		c.UserAgent = s.UserAgent
	}
	if s.MaxResults != nil {
		c.MaxResults = *s.MaxResults
	}
	if s.MaxBodySize != 0 {
		c.MaxBodySize = s.MaxBodySize
	}
	if s.Extractor != "" {
		c.Extractor = s.Extractor
	}
	if s.JSON.Items != "" {
		c.JSONPaths.Items = s.JSON.Items
	}
	if s.JSON.Title != "" {
		c.JSONPaths.Title = s.JSON.Title
	}
	if s.JSON.Link != "" {
		c.JSONPaths.Link = s.JSON.Link
	}
	if s.Proxy != "" {
		c.ProxyAddress = s.Proxy
	}

	if cf.Storage.Path != "" {
		c.DBPath = expandHome(cf.Storage.Path)
	}

	if cf.Fallback != nil {
		c.Fallback = *cf.Fallback
	}

	if cf.Trip.Destination != "" {
		c.Trip.Destination = cf.Trip.Destination
		// A new destination without its own query must not reuse the demo query.
		if cf.Trip.Query == "" {
			c.Trip.Query = ""
		}
	}
	if cf.Trip.StartDate != "" {
		c.Trip.StartDate = cf.Trip.StartDate
	}
	if cf.Trip.EndDate != "" {
		c.Trip.EndDate = cf.Trip.EndDate
	}
	if cf.Trip.Query != "" {
		c.Trip.Query = cf.Trip.Query
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .tripscout in the current directory
// 3. Look for .tripscout in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), "config.yaml"))

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
