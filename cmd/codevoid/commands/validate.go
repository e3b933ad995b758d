package commands

import (
	"fmt"
	"log/slog"

	"github.com/RendijsSmukulis/codevoid.io/internal/config"
	"github.com/RendijsSmukulis/codevoid.io/internal/logfields"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Strict bool `help:"Treat lint warnings as errors"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if _, err := cfg.Build(slog.Default()); err != nil {
		return err
	}

	out := g.out()
	source := cfg.Source
	if source == "" {
		source = "built-in defaults"
	}
	warnings := config.Lint(cfg)
	for _, w := range warnings {
		slog.Warn("Site file lint", logfields.Field(w.Field), logfields.Warning(w.Message))
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if v.Strict && len(warnings) > 0 {
		return fmt.Errorf("%d lint warning(s) in %s", len(warnings), source)
	}
	fmt.Fprintf(out, "%s: ok (%d warning(s))\n", source, len(warnings))
	return nil
}
