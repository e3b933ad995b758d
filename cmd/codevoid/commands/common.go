package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/RendijsSmukulis/codevoid.io/internal/config"
	"github.com/RendijsSmukulis/codevoid.io/internal/errors"
	"github.com/RendijsSmukulis/codevoid.io/internal/logfields"
	"github.com/RendijsSmukulis/codevoid.io/internal/site"
)

// Global carries process-wide dependencies into every command.
type Global struct {
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Site file path" default:"site.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render   RenderCmd   `cmd:"" default:"1" help:"Write the generator settings file"`
	Show     ShowCmd     `cmd:"" help:"Print the derived settings"`
	Validate ValidateCmd `cmd:"" help:"Check the site file and report suspicious values"`
	Init     InitCmd     `cmd:"" help:"Write a site file populated with the defaults"`
	Watch    WatchCmd    `cmd:"" help:"Re-render the settings whenever the site file changes"`
}

// AfterApply runs after flag parsing; the site file may refine logging later.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// OutputFlags are shared by commands that write the settings file.
type OutputFlags struct {
	Output string `short:"o" help:"Settings file to write (default from site file: pelicanconf.py)"`
	Format string `short:"f" help:"Output format: pelican, yaml or json (inferred from --output when omitted)"`
}

// apply overrides the configured output with the flags.
func (f OutputFlags) apply(cfg *config.Config) error {
	if f.Output != "" {
		cfg.Output.Path = f.Output
		if f.Format == "" {
			if inferred, ok := formatFromPath(f.Output); ok {
				cfg.Output.Format = inferred
			}
		}
	}
	if f.Format != "" {
		format, err := config.ParseOutputFormat(f.Format)
		if err != nil {
			return errors.ValidationFailed("--format", err.Error())
		}
		cfg.Output.Format = format
	}
	return nil
}

func formatFromPath(path string) (config.OutputFormat, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return config.OutputFormatPelican, true
	case ".yaml", ".yml":
		return config.OutputFormatYAML, true
	case ".json":
		return config.OutputFormatJSON, true
	}
	return "", false
}

// loadConfig reads the site file and installs the logger it configures.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logging.NewLogger(os.Stderr, root.Verbose)
	slog.SetDefault(logger)
	if cfg.Source != "" {
		slog.Debug("Loaded site file", logfields.Path(cfg.Source))
	}
	return cfg, nil
}

// buildSettings loads the site file, applies output flags and derives the
// settings.
func buildSettings(root *CLI, flags OutputFlags) (*config.Config, *site.Settings, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, nil, err
	}
	if err := flags.apply(cfg); err != nil {
		return nil, nil, err
	}
	settings, err := cfg.Build(slog.Default())
	if err != nil {
		return nil, nil, err
	}
	return cfg, settings, nil
}
