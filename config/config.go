// FILE: lixenwraith/sitecore/config/config.go
package config

import (
	"reflect"
	"sort"
	"strings"
	"sync"
)

// LoadOptions configures how a Config resolves its layers.
type LoadOptions struct {
	// EnvPrefix is prepended to environment variable names
	// Example: "SITECORE_" transforms "content.dir" to "SITECORE_CONTENT_DIR"
	EnvPrefix string

	// EnvTransform customizes how paths map to environment variables
	// If nil, uses default transformation (dots to underscores, uppercase)
	EnvTransform EnvTransformFunc

	// LookupEnv reads one environment variable. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	// DisableEnv skips the environment overlay entirely
	DisableEnv bool

	// InstallDir roots the internal layouts directory.
	// Defaults to the directory of the running executable.
	InstallDir string

	// TagName is the struct tag used by Scan (default "toml")
	TagName string
}

// DefaultLoadOptions returns the standard load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		EnvPrefix: DefaultEnvPrefix,
		TagName:   "toml",
	}
}

// Config holds the single authoritative configuration tree of a site build
// together with the source and destination directories it resolves paths against.
type Config struct {
	data    *Mapping
	options LoadOptions
	envData map[string]string // path -> env var name applied at construction

	sourceDir      string
	destinationDir string

	mutex sync.RWMutex
}

// New resolves a configuration from the built-in defaults, an optional
// source and the process environment.
//
// src may be another *Config, a *Mapping, a mapping Value or a map with
// string keys; anything else (including nil) is ignored.
func New(src any) *Config {
	return NewWithOptions(src, DefaultLoadOptions())
}

// NewWithOptions is New with explicit load options.
func NewWithOptions(src any, opts LoadOptions) *Config {
	return newConfig(Defaults(), src, opts)
}

func newConfig(base *Mapping, src any, opts LoadOptions) *Config {
	if opts.TagName == "" {
		opts.TagName = "toml"
	}
	c := &Config{
		data:    base,
		options: opts,
		envData: make(map[string]string),
	}
	if layer := asMapping(src); layer != nil {
		c.data.MergeOver(layer)
	}
	if !opts.DisableEnv {
		c.applyEnv()
	}
	return c
}

// asMapping converts a supported config source into a detached Mapping.
func asMapping(src any) *Mapping {
	switch t := src.(type) {
	case nil:
		return nil
	case *Config:
		if t == nil {
			return nil
		}
		return t.All()
	case *Mapping:
		if t == nil {
			return nil
		}
		return t.Clone()
	case Value:
		if t.Kind() != KindMapping {
			return nil
		}
		return t.Mapping().Clone()
	case map[string]any:
		return FromAny(t).Mapping()
	}

	rv := reflect.ValueOf(src)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return FromAny(src).Mapping()
	}
	return nil
}

// Import merges src into the configuration with reversed precedence:
// values already present win, keys absent from the tree are added.
// Unsupported sources are ignored.
func (c *Config) Import(src any) {
	layer := asMapping(src)
	if layer == nil {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data.MergeUnder(layer)
}

// Get retrieves the value at a dot-delimited path as plain Go data.
// The second return value reports whether the path exists.
func (c *Config) Get(path string) (any, bool) {
	v, ok := c.Lookup(path)
	if !ok {
		return nil, false
	}
	return v.Interface(), true
}

// GetDefault returns the value at path, or def when the path is absent or null.
func (c *Config) GetDefault(path string, def any) any {
	v, ok := c.Lookup(path)
	if !ok || v.IsNull() {
		return def
	}
	return v.Interface()
}

// Lookup returns a copy of the tree node at path.
func (c *Config) Lookup(path string) (Value, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	v, ok := c.data.Lookup(path)
	if !ok {
		return Null(), false
	}
	return v.Clone(), true
}

// Has reports whether path exists in the tree.
func (c *Config) Has(path string) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	_, ok := c.data.Lookup(path)
	return ok
}

// Set writes value at path, creating intermediate mappings.
func (c *Config) Set(path string, value any) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	v := FromAny(value)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data.SetPath(path, v)
	return nil
}

// All returns a deep copy of the whole tree.
func (c *Config) All() *Mapping {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.data.Clone()
}

// AsMap returns the whole tree as nested plain maps.
func (c *Config) AsMap() map[string]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.data.Interface()
}

// Paths returns every leaf path in sorted order.
func (c *Config) Paths() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var paths []string
	c.data.Walk(func(segments []string, _ Value) {
		paths = append(paths, strings.Join(segments, "."))
	})
	sort.Strings(paths)
	return paths
}
