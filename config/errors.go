// FILE: lixenwraith/sitecore/config/errors.go
package config

import "errors"

var (
	// ErrNotFound is returned by typed getters when a path has no value
	ErrNotFound = errors.New("config path not found")
	// ErrEmptyPath is returned when a write targets the empty path
	ErrEmptyPath = errors.New("config path cannot be empty")
	// ErrInvalidPath is returned when a path segment is not a bare key
	ErrInvalidPath = errors.New("invalid config path")
	// ErrInvalidDirectory is returned when a source or destination directory does not exist
	ErrInvalidDirectory = errors.New("invalid directory")
	// ErrMissingThemeLayout is returned when a configured theme has no layouts directory
	ErrMissingThemeLayout = errors.New("theme layouts directory not found")
	// ErrUnknownFormat is returned when a config layer format cannot be determined
	ErrUnknownFormat = errors.New("unknown config format")
	// ErrMissingRequired is returned by Validate for unset required paths
	ErrMissingRequired = errors.New("missing required configuration")
)
