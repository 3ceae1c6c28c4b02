// FILE: lixenwraith/sitecore/config/theme.go
package config

import (
	"fmt"
	"path/filepath"
)

// Themes returns the configured theme names in override order.
// A single name is returned as a one-element list; no theme yields nil.
func (c *Config) Themes() []string {
	themes, err := c.StringSlice("theme")
	if err != nil {
		return nil
	}
	out := themes[:0]
	for _, theme := range themes {
		if theme != "" {
			out = append(out, theme)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// HasTheme reports whether at least one theme is configured, verifying that
// every configured theme has a layouts directory. The first theme missing
// one fails with ErrMissingThemeLayout.
func (c *Config) HasTheme() (bool, error) {
	themes := c.Themes()
	if len(themes) == 0 {
		return false, nil
	}

	for _, theme := range themes {
		layouts := c.ThemeDirPath(theme, "layouts")
		if !isDir(layouts) {
			return false, fmt.Errorf("%w: theme %q: directory '%s' not found", ErrMissingThemeLayout, theme, layouts)
		}
	}

	return true, nil
}

// ThemeDirPath returns <themes>/<theme>/<dir>.
func (c *Config) ThemeDirPath(theme, dir string) string {
	return filepath.Join(c.ThemesPath(), theme, dir)
}
