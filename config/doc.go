// FILE: lixenwraith/sitecore/config/doc.go

// Package config resolves the configuration of a site build from layered
// sources into one authoritative, queryable tree.
//
// Layers, lowest to highest precedence:
//  1. Built-in defaults (embedded defaults.toml)
//  2. Caller overrides (another *Config, a *Mapping, or a map)
//  3. Environment variables (SITECORE_CONTENT_DIR for content.dir)
//
// The environment only replaces leaves that already exist after step 2;
// it cannot introduce new keys, and it is read once, at construction.
//
// Quick Start:
//
//	cfg, err := config.NewBuilder().
//	    WithLayer(fileBytes, config.FormatYAML).
//	    WithSourceDir("/site").
//	    WithValidator(config.ValidateThemes).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	content := cfg.ContentPath()          // /site/content
//	title, _ := cfg.String("title")
//
// Import layers more values on top of a built Config with reversed
// precedence: what is already set wins and only missing keys are added.
//
// A Config guards its state with a read-write mutex, so concurrent reads
// are safe.
package config
