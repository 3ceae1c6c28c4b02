// FILE: lixenwraith/sitecore/cmd/sitecore/main_test.go
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sitecore/config"
)

func testApp(env map[string]string) (*app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &app{
		stdout: &stdout,
		stderr: &stderr,
		lookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}, &stdout, &stderr
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseSetFlags(t *testing.T) {
	m, err := parseSetFlags([]string{
		"title=My Docs",
		"paginate.max=10",
		"canonicalurl=true",
		"content.ext=[md, txt]",
		"description=",
	})
	require.NoError(t, err)

	v, ok := m.Lookup("title")
	require.True(t, ok)
	assert.Equal(t, "My Docs", v.Scalar())

	v, _ = m.Lookup("paginate.max")
	assert.Equal(t, 10, v.Scalar())

	v, _ = m.Lookup("canonicalurl")
	assert.Equal(t, true, v.Scalar())

	v, _ = m.Lookup("content.ext")
	assert.Equal(t, config.KindSequence, v.Kind())
	assert.Len(t, v.Items(), 2)

	v, _ = m.Lookup("description")
	assert.Equal(t, "", v.Scalar())

	t.Run("Invalid", func(t *testing.T) {
		_, err := parseSetFlags([]string{"novalue"})
		assert.Error(t, err)

		_, err = parseSetFlags([]string{"bad key=1"})
		assert.ErrorIs(t, err, config.ErrInvalidPath)

		_, err = parseSetFlags([]string{"=1"})
		assert.ErrorIs(t, err, config.ErrEmptyPath)
	})
}

func TestDiscoverConfigFile(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, discoverConfigFile(dir))

	writeFile(t, filepath.Join(dir, "sitecore.yaml"), "title: x\n")
	assert.Equal(t, filepath.Join(dir, "sitecore.yaml"), discoverConfigFile(dir))

	writeFile(t, filepath.Join(dir, "sitecore.toml"), "title = 'x'\n")
	assert.Equal(t, filepath.Join(dir, "sitecore.toml"), discoverConfigFile(dir), "toml is preferred")
}

func TestEnvLookup(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envFile, "SITECORE_TITLE=From dotenv\nSITECORE_LANGUAGE=fr\n")

	base := func(key string) (string, bool) {
		if key == "SITECORE_LANGUAGE" {
			return "de", true
		}
		return "", false
	}
	lookup, err := envLookup([]string{envFile}, base)
	require.NoError(t, err)

	v, ok := lookup("SITECORE_TITLE")
	assert.True(t, ok)
	assert.Equal(t, "From dotenv", v)

	v, _ = lookup("SITECORE_LANGUAGE")
	assert.Equal(t, "de", v, "process environment wins over dotenv")

	_, ok = lookup("SITECORE_OTHER")
	assert.False(t, ok)

	_, err = envLookup([]string{filepath.Join(t.TempDir(), "missing.env")}, base)
	assert.Error(t, err)
}

func TestManifest(t *testing.T) {
	data := []byte(`pages:
  - id: a
    title: hello
    section: blog
    params:
      draft: true
  - id: b
    title: ~
  - id: home
    kind: homepage
`)
	pages, err := decodeManifest(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "home"}, pages.IDs())

	a, _ := pages.Get("a")
	title, ok := a.Title()
	assert.True(t, ok)
	assert.Equal(t, "hello", title)
	assert.Equal(t, "blog", a.Section())
	draft, _ := a.Param("draft")
	assert.Equal(t, true, draft)

	b, _ := pages.Get("b")
	assert.False(t, b.HasTitle())

	encoded, err := encodeManifest(pages)
	require.NoError(t, err)
	again, err := decodeManifest(encoded)
	require.NoError(t, err)
	assert.Equal(t, pages.IDs(), again.IDs())
	b, _ = again.Get("b")
	assert.False(t, b.HasTitle())

	t.Run("Errors", func(t *testing.T) {
		_, err := decodeManifest([]byte("pages:\n  - title: x\n"))
		assert.Error(t, err)

		_, err = decodeManifest([]byte("pages:\n  - id: a\n  - id: a\n"))
		assert.Error(t, err)

		_, err = decodeManifest([]byte("pages:\n  - id: a\n    kind: blogpost\n"))
		assert.Error(t, err)
	})
}

func TestRun_Generate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sitecore.yaml"), `title: Docs
generators: [section, homepage, titleupper]
`)
	pagesPath := filepath.Join(dir, "pages.yaml")
	writeFile(t, pagesPath, `pages:
  - id: intro
    title: introduction
    section: guide
  - id: notes
`)
	metricsPath := filepath.Join(dir, "metrics.prom")

	a, stdout, _ := testApp(map[string]string{"SITECORE_LOG_LEVEL": "error"})
	err := a.run([]string{"-s", dir, "generate", "--pages", pagesPath, "--metrics-file", metricsPath})
	require.NoError(t, err)

	out, err := decodeManifest(stdout.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"intro", "notes", "guide", "index"}, out.IDs())

	for id, want := range map[string]string{"intro": "INTRODUCTION", "guide": "GUIDE", "index": "DOCS"} {
		p, ok := out.Get(id)
		require.True(t, ok, id)
		title, _ := p.Title()
		assert.Equal(t, want, title, id)
	}
	notes, _ := out.Get("notes")
	assert.False(t, notes.HasTitle())

	metricsData, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metricsData), `sitecore_generated_pages_total{generator="section"} 1`)
	assert.Contains(t, string(metricsData), "sitecore_pages 4")
}

func TestRun_GenerateMissingTheme(t *testing.T) {
	dir := t.TempDir()
	pagesPath := filepath.Join(dir, "pages.yaml")
	writeFile(t, pagesPath, "pages: []\n")

	a, _, _ := testApp(nil)
	err := a.run([]string{"-s", dir, "--set", "theme=hugo", "generate", "--pages", pagesPath})
	assert.ErrorIs(t, err, config.ErrMissingThemeLayout)
}

func TestRun_ConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sitecore.toml"), `title = "From file"
description = "file"

[content]
dir = "src"
`)

	a, stdout, _ := testApp(map[string]string{"SITECORE_DESCRIPTION": "env"})
	err := a.run([]string{
		"-s", dir,
		"--set", "title=From flag",
		"--set", "description=flag",
		"config", "--format", "json",
	})
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &tree))
	assert.Equal(t, "From flag", tree["title"])
	assert.Equal(t, "env", tree["description"], "environment wins over flags")
	assert.Equal(t, "src", tree["content"].(map[string]any)["dir"])
	assert.Equal(t, "_site", tree["output"].(map[string]any)["dir"], "defaults survive")
}

func TestRun_Paths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sitecore.yaml"), "content:\n  dir: src\n")

	a, stdout, _ := testApp(nil)
	require.NoError(t, a.run([]string{"-s", dir, "paths"}))

	out := stdout.String()
	assert.Contains(t, out, filepath.Join(dir, "src"))
	assert.Contains(t, out, filepath.Join(dir, "_site"))
	assert.Contains(t, out, "(none)")
}

func TestRun_InvalidSourceDir(t *testing.T) {
	a, _, _ := testApp(nil)
	err := a.run([]string{"-s", filepath.Join(t.TempDir(), "missing"), "paths"})
	assert.ErrorIs(t, err, config.ErrInvalidDirectory)
}
