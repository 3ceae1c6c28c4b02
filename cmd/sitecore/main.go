// FILE: lixenwraith/sitecore/cmd/sitecore/main.go

// Command sitecore resolves a site's configuration and runs its page
// generators over a page manifest.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Globals are the flags shared by every command.
type Globals struct {
	Source      string   `short:"s" help:"Site source directory" default:"." type:"path"`
	Destination string   `short:"d" help:"Destination directory (defaults to the source directory)" type:"path"`
	ConfigFile  string   `name:"config" short:"c" help:"Configuration file (default: sitecore.{toml,yaml,yml,json} in the source directory)" type:"path"`
	EnvFile     []string `name:"env-file" sep:"none" help:"Dotenv files read before resolving configuration"`
	Set         []string `sep:"none" help:"Override a configuration value" placeholder:"KEY=VALUE"`
	LogLevel    string   `name:"log-level" help:"Log level (debug, info, warn, error); overrides log.level"`
	Verbose     bool     `short:"v" help:"Enable debug logging"`
}

// CLI is the command line grammar.
type CLI struct {
	Globals

	Config   ConfigCmd   `cmd:"" help:"Print the resolved configuration"`
	Paths    PathsCmd    `cmd:"" help:"Print the resolved site directories and check the theme"`
	Generate GenerateCmd `cmd:"" help:"Run the configured generators over a page manifest"`
}

// app carries the process environment commands run against.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(string) (string, bool)
}

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr, lookupEnv: os.LookupEnv}
	if err := a.run(os.Args[1:]); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func (a *app) run(args []string) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("sitecore"),
		kong.Description("Resolve static site configuration and run page generators."),
		kong.UsageOnError(),
		kong.Writers(a.stdout, a.stderr),
	)
	if err != nil {
		return fmt.Errorf("building command line parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run(&cli.Globals, a)
}
