// FILE: lixenwraith/sitecore/cmd/sitecore/load.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sitecore/config"
	"github.com/lixenwraith/sitecore/internal/logging"
)

// configFileNames are tried in order when --config is not given.
var configFileNames = []string{"sitecore.toml", "sitecore.yaml", "sitecore.yml", "sitecore.json"}

// discoverConfigFile returns the first config file found in dir, or "".
func discoverConfigFile(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// parseSetFlags turns key=value pairs into an override mapping. Values are
// read as YAML so numbers, booleans and lists keep their types.
func parseSetFlags(sets []string) (*config.Mapping, error) {
	m := config.NewMapping()
	for _, s := range sets {
		key, raw, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected KEY=VALUE", s)
		}
		if err := config.ValidatePath(key); err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", s, err)
		}
		m.SetPath(key, config.FromAny(parseSetValue(raw)))
	}
	return m, nil
}

func parseSetValue(raw string) any {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

// envLookup layers dotenv files under the process environment: variables
// already set in the process win.
func envLookup(files []string, base func(string) (string, bool)) (func(string) (string, bool), error) {
	if len(files) == 0 {
		return base, nil
	}
	vars, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}
	return func(key string) (string, bool) {
		if v, ok := base(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

// loadConfig resolves the configuration for g: built-in defaults, the
// config file, --set overrides, then the environment.
func (a *app) loadConfig(g *Globals) (*config.Config, error) {
	lookup, err := envLookup(g.EnvFile, a.lookupEnv)
	if err != nil {
		return nil, err
	}

	path := g.ConfigFile
	if path == "" {
		dir := g.Source
		if dir == "" {
			dir = "."
		}
		path = discoverConfigFile(dir)
	}

	layer := config.NewMapping()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		m, err := config.Parse(data, config.DetectFormat(path))
		if err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		layer = m
	}

	overrides, err := parseSetFlags(g.Set)
	if err != nil {
		return nil, err
	}
	layer.MergeOver(overrides)

	return config.NewBuilder().
		WithLookupEnv(lookup).
		WithSource(layer).
		WithSourceDir(g.Source).
		WithDestinationDir(g.Destination).
		Build()
}

// newLogger builds the command logger from the log.* keys and flags.
func (a *app) newLogger(g *Globals, cfg *config.Config) *slog.Logger {
	var opts logging.Options
	if err := cfg.Scan("log", &opts); err != nil {
		opts = logging.Options{}
	}
	if g.LogLevel != "" {
		opts.Level = g.LogLevel
	}
	if g.Verbose {
		opts.Level = "debug"
	}
	return logging.New(opts, a.stderr)
}
