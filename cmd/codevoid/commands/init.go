package commands

import (
	"fmt"

	"github.com/RendijsSmukulis/codevoid.io/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing site file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	fmt.Fprintf(g.out(), "Wrote default site file to %s\n", root.Config)
	return nil
}
