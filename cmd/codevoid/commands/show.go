package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/RendijsSmukulis/codevoid.io/internal/config"
	"github.com/RendijsSmukulis/codevoid.io/internal/render"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format string `short:"f" help:"Print the full settings in this format (pelican, yaml, json) instead of the path summary"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	_, settings, err := buildSettings(root, OutputFlags{})
	if err != nil {
		return err
	}

	if s.Format != "" {
		format, err := config.ParseOutputFormat(s.Format)
		if err != nil {
			return err
		}
		data, err := render.Bytes(format, settings)
		if err != nil {
			return err
		}
		_, err = g.out().Write(data)
		return err
	}

	out := g.out()
	fmt.Fprintln(out, "Static paths:")
	for _, p := range settings.StaticPaths() {
		fmt.Fprintf(out, "  %s\n", p)
	}
	fmt.Fprintln(out, "Extra path metadata:")
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range settings.ExtraPathEntries() {
		fmt.Fprintf(tw, "  %s\t-> %s\n", e.Source, e.Metadata.Path)
	}
	return tw.Flush()
}
