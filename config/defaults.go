// FILE: lixenwraith/sitecore/config/defaults.go
package config

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed defaults.toml
var defaultsTOML []byte

// DefaultEnvPrefix namespaces environment overrides: content.dir -> SITECORE_CONTENT_DIR.
const DefaultEnvPrefix = "SITECORE_"

var builtinDefaults = sync.OnceValue(func() *Mapping {
	m, err := Parse(defaultsTOML, FormatTOML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return m
})

// Defaults returns a copy of the built-in default layer.
func Defaults() *Mapping {
	return builtinDefaults().Clone()
}
