// FILE: lixenwraith/sitecore/config/convenience.go
package config

import (
	"fmt"
	"io"
	"strings"
)

// Validate checks that all required paths hold a value. Absent paths,
// nulls and empty strings count as missing.
func (c *Config) Validate(required ...string) error {
	var missing []string

	for _, path := range required {
		v, ok := c.Lookup(path)
		if !ok || v.IsNull() {
			missing = append(missing, path)
			continue
		}
		if s, isString := v.Scalar().(string); isString && s == "" {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	return nil
}

// Debug returns a formatted string showing all configuration values and
// which of them came from the environment.
func (c *Config) Debug() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	fmt.Fprintf(&b, "Source: %q\n", c.sourceDir)
	fmt.Fprintf(&b, "Destination: %q\n", c.destinationDir)
	b.WriteString("Current values:\n")

	flat := flatten(c.data)
	for _, path := range sortedKeys(flat) {
		fmt.Fprintf(&b, "  %s = %v", path, flat[path])
		if envVar, ok := c.envData[path]; ok {
			fmt.Fprintf(&b, " (env %s)", envVar)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Dump writes the current configuration to w in the given format.
func (c *Config) Dump(w io.Writer, format Format) error {
	data, err := Marshal(c.All(), format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Clone creates a deep copy of the configuration, directories included.
func (c *Config) Clone() *Config {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	clone := &Config{
		data:           c.data.Clone(),
		options:        c.options,
		envData:        make(map[string]string, len(c.envData)),
		sourceDir:      c.sourceDir,
		destinationDir: c.destinationDir,
	}
	for path, envVar := range c.envData {
		clone.envData[path] = envVar
	}

	return clone
}
