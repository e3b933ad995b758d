package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/RendijsSmukulis/codevoid.io/internal/render"
	"github.com/RendijsSmukulis/codevoid.io/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	OutputFlags `embed:""`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The first render must succeed; later failures keep the last good file.
	if err := w.renderOnce(g, root); err != nil {
		return err
	}

	watcher, err := watch.New(root.Config, func(context.Context) error {
		return w.renderOnce(g, root)
	})
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}

func (w *WatchCmd) renderOnce(g *Global, root *CLI) error {
	cfg, settings, err := buildSettings(root, w.OutputFlags)
	if err != nil {
		return err
	}
	if err := render.WriteFile(cfg.Output.Path, cfg.Output.Format, settings); err != nil {
		return err
	}
	fmt.Fprintf(g.out(), "Wrote %s settings to %s\n", cfg.Output.Format, cfg.Output.Path)
	return nil
}
