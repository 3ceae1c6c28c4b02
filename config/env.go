// FILE: lixenwraith/sitecore/config/env.go
package config

import (
	"os"
	"strings"
)

// EnvTransformFunc converts a configuration path to an environment variable name
type EnvTransformFunc func(path string) string

// defaultEnvTransform creates the default environment variable transformer
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(path string) string {
		env := strings.ReplaceAll(path, ".", "_")
		env = strings.ToUpper(env)
		if prefix != "" {
			env = prefix + env
		}
		return env
	}
}

func (c *Config) envTransform() EnvTransformFunc {
	if c.options.EnvTransform != nil {
		return c.options.EnvTransform
	}
	return defaultEnvTransform(c.options.EnvPrefix)
}

// EnvVarName returns the environment variable that overrides path.
func (c *Config) EnvVarName(path string) string {
	return c.envTransform()(path)
}

// envCandidates maps env var name -> path for every leaf eligible for the overlay.
// Only scalar and null leaves qualify; sequences and mappings are never replaced.
func envCandidates(m *Mapping, transform EnvTransformFunc) map[string]string {
	candidates := make(map[string]string)
	m.Walk(func(segments []string, v Value) {
		if v.Kind() != KindScalar && v.Kind() != KindNull {
			return
		}
		path := strings.Join(segments, ".")
		candidates[transform(path)] = path
	})
	return candidates
}

// applyEnv overlays environment values onto existing leaves. It runs once, at construction.
func (c *Config) applyEnv() {
	lookup := c.options.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for envVar, path := range envCandidates(c.data, c.envTransform()) {
		value, exists := lookup(envVar)
		if !exists {
			continue
		}
		c.data.SetPath(path, Scalar(value)) // Store as string
		c.envData[path] = envVar
	}
}

// EnvOverrides returns path -> env var name for every leaf the environment
// replaced during construction. The environment is not read again.
func (c *Config) EnvOverrides() map[string]string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make(map[string]string, len(c.envData))
	for path, envVar := range c.envData {
		out[path] = envVar
	}
	return out
}
