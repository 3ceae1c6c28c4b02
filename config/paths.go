// FILE: lixenwraith/sitecore/config/paths.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SetSourceDir sets the site source directory. An empty dir means the
// current working directory. The directory must exist.
func (c *Config) SetSourceDir(dir string) error {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = cwd
	}
	if !isDir(dir) {
		return fmt.Errorf("%w: '%s' is not a valid source directory", ErrInvalidDirectory, dir)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.sourceDir = dir
	return nil
}

// SourceDir returns the source directory, or "" if it was never set.
func (c *Config) SourceDir() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.sourceDir
}

// SetDestinationDir sets the build destination directory. An empty dir
// means the source directory. The directory must exist.
func (c *Config) SetDestinationDir(dir string) error {
	if dir == "" {
		dir = c.SourceDir()
	}
	if !isDir(dir) {
		return fmt.Errorf("%w: '%s' is not a valid destination directory", ErrInvalidDirectory, dir)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.destinationDir = dir
	return nil
}

// DestinationDir returns the destination directory, or "" if it was never set.
func (c *Config) DestinationDir() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.destinationDir
}

// ContentPath returns <source>/<content.dir>.
func (c *Config) ContentPath() string { return c.sourcePath("content.dir") }

// LayoutsPath returns <source>/<layouts.dir>.
func (c *Config) LayoutsPath() string { return c.sourcePath("layouts.dir") }

// ThemesPath returns <source>/<themes.dir>.
func (c *Config) ThemesPath() string { return c.sourcePath("themes.dir") }

// OutputPath returns <source>/<output.dir>.
func (c *Config) OutputPath() string { return c.sourcePath("output.dir") }

// StaticPath returns <source>/<static.dir>.
func (c *Config) StaticPath() string { return c.sourcePath("static.dir") }

// InternalLayoutsPath returns the built-in layouts directory, rooted at the
// tool's install directory rather than the site source.
func (c *Config) InternalLayoutsPath() string {
	rel, _ := c.String("layouts.internal.dir")
	return filepath.Join(c.installDir(), rel)
}

// sourcePath joins the source directory with the relative directory configured at key.
// The source directory must have been set first; an unset one yields a relative path.
func (c *Config) sourcePath(key string) string {
	rel, _ := c.String(key)
	return filepath.Join(c.SourceDir(), rel)
}

func (c *Config) installDir() string {
	if c.options.InstallDir != "" {
		return c.options.InstallDir
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
