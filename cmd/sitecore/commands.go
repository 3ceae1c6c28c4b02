// FILE: lixenwraith/sitecore/cmd/sitecore/commands.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/sitecore/config"
	"github.com/lixenwraith/sitecore/generator"
	"github.com/lixenwraith/sitecore/internal/metrics"
)

// ConfigCmd prints the resolved configuration tree.
type ConfigCmd struct {
	Format string `short:"f" help:"Output format" enum:"toml,yaml,json" default:"toml"`
	Debug  bool   `help:"Print flattened values and their environment sources instead"`
}

// Run prints the configuration.
func (c *ConfigCmd) Run(g *Globals, a *app) error {
	cfg, err := a.loadConfig(g)
	if err != nil {
		return err
	}
	if c.Debug {
		_, err := fmt.Fprint(a.stdout, cfg.Debug())
		return err
	}
	format, err := config.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	return cfg.Dump(a.stdout, format)
}

// PathsCmd prints the directories a build would use.
type PathsCmd struct{}

// Run prints the directories.
func (c *PathsCmd) Run(g *Globals, a *app) error {
	cfg, err := a.loadConfig(g)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"source", cfg.SourceDir()},
		{"destination", cfg.DestinationDir()},
		{"content", cfg.ContentPath()},
		{"layouts", cfg.LayoutsPath()},
		{"layouts.internal", cfg.InternalLayoutsPath()},
		{"themes", cfg.ThemesPath()},
		{"output", cfg.OutputPath()},
		{"static", cfg.StaticPath()},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}

	themes := cfg.Themes()
	switch ok, err := cfg.HasTheme(); {
	case err != nil:
		fmt.Fprintf(tw, "theme\t%s (error: %v)\n", strings.Join(themes, ", "), err)
	case ok:
		fmt.Fprintf(tw, "theme\t%s (ok)\n", strings.Join(themes, ", "))
	default:
		fmt.Fprintf(tw, "theme\t(none)\n")
	}
	return tw.Flush()
}

// GenerateCmd runs the configured generator pipeline over a page manifest.
type GenerateCmd struct {
	Pages       string `required:"" help:"YAML page manifest" type:"existingfile"`
	Output      string `short:"o" help:"Write the resulting manifest here instead of stdout" type:"path"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus text exposition of the run here" type:"path"`
}

// Run generates pages from the manifest.
func (c *GenerateCmd) Run(g *Globals, a *app) error {
	cfg, err := a.loadConfig(g)
	if err != nil {
		return err
	}
	logger := a.newLogger(g, cfg)

	if _, err := cfg.HasTheme(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.Pages)
	if err != nil {
		return fmt.Errorf("reading page manifest: %w", err)
	}
	pages, err := decodeManifest(data)
	if err != nil {
		return err
	}

	reg := prom.NewRegistry()
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if c.MetricsFile != "" {
		recorder = metrics.NewPrometheusRecorder(reg)
	}

	pipeline, err := generator.FromConfig(cfg, nil,
		generator.WithLogger(logger),
		generator.WithRecorder(recorder),
		generator.WithProgress(func(s generator.Step) {
			logger.Debug("Generator progress", "generator", s.Generator, "message", s.Message)
		}),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting generators", "generators", pipeline.Names(), "pages", pages.Len())
	out, report, err := pipeline.Run(ctx, pages)
	if err != nil {
		return err
	}

	encoded, err := encodeManifest(out)
	if err != nil {
		return fmt.Errorf("encoding pages: %w", err)
	}
	if c.Output != "" {
		if err := os.WriteFile(c.Output, encoded, 0o644); err != nil {
			return fmt.Errorf("writing pages: %w", err)
		}
	} else if _, err := a.stdout.Write(encoded); err != nil {
		return err
	}

	if c.MetricsFile != "" {
		if err := prom.WriteToTextfile(c.MetricsFile, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	logger.Info("Generation complete",
		"run_id", report.RunID,
		"pages_in", pages.Len(),
		"pages_out", out.Len(),
		"duration", report.Duration)
	return nil
}
