// FILE: lixenwraith/sitecore/generator/registry.go
package generator

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/language"

	"github.com/lixenwraith/sitecore/config"
)

// ErrUnknownGenerator is returned when a generator name has no factory.
var ErrUnknownGenerator = errors.New("unknown generator")

// Factory builds a generator from the site configuration.
type Factory func(cfg *config.Config) (Generator, error)

// Registry maps generator names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the built-in generators.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.factories["homepage"] = newHomepage
	r.factories["section"] = newSection
	r.factories["titleupper"] = newTitleUpper
	return r
}

// Register adds a factory under name. A name can be registered once.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("generator registration requires a name and a factory")
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("generator %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the generator registered under name.
func (r *Registry) New(name string, cfg *config.Config) (Generator, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	g, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("generator %q: %w", name, err)
	}
	return g, nil
}

// FromConfig builds a pipeline from the "generators" list, in list order.
// A nil registry means DefaultRegistry.
func FromConfig(cfg *config.Config, reg *Registry, opts ...Option) (*Pipeline, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	names, err := cfg.StringSlice("generators")
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return nil, fmt.Errorf("reading generators: %w", err)
	}

	p := NewPipeline(opts...)
	for _, name := range names {
		g, err := reg.New(name, cfg)
		if err != nil {
			return nil, err
		}
		p.Add(name, g)
	}
	return p, nil
}

func siteLanguage(cfg *config.Config) language.Tag {
	s, _ := cfg.String("language")
	return language.Make(s)
}

func newHomepage(cfg *config.Config) (Generator, error) {
	title, err := cfg.String("title")
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return nil, err
	}
	return &Homepage{Title: title}, nil
}

func newSection(cfg *config.Config) (Generator, error) {
	return NewSection(siteLanguage(cfg)), nil
}

func newTitleUpper(cfg *config.Config) (Generator, error) {
	return NewTitleUpper(siteLanguage(cfg)), nil
}
