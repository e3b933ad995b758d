package commands

import (
	"fmt"

	"github.com/RendijsSmukulis/codevoid.io/internal/render"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	OutputFlags `embed:""`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, settings, err := buildSettings(root, r.OutputFlags)
	if err != nil {
		return err
	}
	if err := render.WriteFile(cfg.Output.Path, cfg.Output.Format, settings); err != nil {
		return err
	}
	fmt.Fprintf(g.out(), "Wrote %s settings to %s\n", cfg.Output.Format, cfg.Output.Path)
	return nil
}
