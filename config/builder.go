// FILE: lixenwraith/sitecore/config/builder.go
package config

import (
	"fmt"
)

// ValidatorFunc defines the signature for a function that can validate a Config instance.
// It receives the fully built *Config and should return an error if validation fails.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for building configurations
type Builder struct {
	opts       LoadOptions
	source     any
	defaults   []*Mapping
	layers     []*Mapping
	imports    []any
	sourceDir  *string
	destDir    *string
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultLoadOptions(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithSource sets the caller override source: a *Config, *Mapping or map.
// Layers added with WithLayer are merged over it.
func (b *Builder) WithSource(src any) *Builder {
	b.source = src
	return b
}

// WithDefaults registers extra default keys from a tagged struct under prefix.
// They extend the built-in defaults, so the environment can override them.
func (b *Builder) WithDefaults(prefix string, defaults any) *Builder {
	m, err := StructMapping(prefix, defaults, b.opts.TagName)
	if err != nil {
		b.setErr(fmt.Errorf("failed to register defaults: %w", err))
		return b
	}
	b.defaults = append(b.defaults, m)
	return b
}

// WithLayer parses an override layer. Layers are merged in call order,
// later ones winning. An empty format triggers content detection.
func (b *Builder) WithLayer(data []byte, format Format) *Builder {
	m, err := Parse(data, format)
	if err != nil {
		b.setErr(err)
		return b
	}
	b.layers = append(b.layers, m)
	return b
}

// WithEnvPrefix sets the environment variable prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithEnvTransform sets a custom environment variable transformer
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.opts.EnvTransform = fn
	return b
}

// WithLookupEnv replaces os.LookupEnv as the environment reader
func (b *Builder) WithLookupEnv(fn func(string) (string, bool)) *Builder {
	b.opts.LookupEnv = fn
	return b
}

// WithoutEnv disables the environment overlay
func (b *Builder) WithoutEnv() *Builder {
	b.opts.DisableEnv = true
	return b
}

// WithInstallDir sets the root for the internal layouts directory
func (b *Builder) WithInstallDir(dir string) *Builder {
	b.opts.InstallDir = dir
	return b
}

// WithTagName sets the struct tag used by WithDefaults and Scan
func (b *Builder) WithTagName(tagName string) *Builder {
	b.opts.TagName = tagName
	return b
}

// WithSourceDir sets the source directory; "" means the working directory
func (b *Builder) WithSourceDir(dir string) *Builder {
	b.sourceDir = &dir
	return b
}

// WithDestinationDir sets the destination directory; "" means the source directory
func (b *Builder) WithDestinationDir(dir string) *Builder {
	b.destDir = &dir
	return b
}

// WithImport queues a mapping imported after construction. Imports never
// replace values already present.
func (b *Builder) WithImport(src any) *Builder {
	b.imports = append(b.imports, src)
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build creates the Config instance with all specified options
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	base := Defaults()
	for _, m := range b.defaults {
		base.MergeUnder(m)
	}

	var src any = b.source
	if len(b.layers) > 0 {
		merged := asMapping(b.source)
		if merged == nil {
			merged = NewMapping()
		}
		for _, layer := range b.layers {
			merged.MergeOver(layer)
		}
		src = merged
	}

	cfg := newConfig(base, src, b.opts)

	for _, imp := range b.imports {
		cfg.Import(imp)
	}

	if b.sourceDir != nil {
		if err := cfg.SetSourceDir(*b.sourceDir); err != nil {
			return nil, err
		}
	}
	if b.destDir != nil {
		if err := cfg.SetDestinationDir(*b.destDir); err != nil {
			return nil, err
		}
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

// ValidateThemes fails when a configured theme lacks its layouts directory.
func ValidateThemes(c *Config) error {
	_, err := c.HasTheme()
	return err
}
