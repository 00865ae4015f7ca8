// Package config provides configuration structures and utilities for tripscout.
// It defines the search request settings, the store location, and the fixed
// demo trip, together with YAML config file loading and validation.
package config
