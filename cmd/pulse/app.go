package main

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/pulse/internal/config"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. It runs the ui and relays config reloads into it.
type App struct {
	configUpdates <-chan config.Config
}

func NewApp(configUpdates <-chan config.Config) *App {
	return &App{configUpdates: configUpdates}
}

// Run blocks until the ui exits or ctx is cancelled.
func (app *App) Run(ctx context.Context, ui UI) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer cancel()

		if err := ui.Run(); err != nil {
			return errors.Join(err, errApp)
		}

		return nil
	})
	group.Go(func() error {
		app.relayConfig(groupCtx, ui)

		return nil
	})

	return group.Wait()
}

// relayConfig forwards reloaded configs to the ui. The ui applies them on its own update loop.
func (app *App) relayConfig(ctx context.Context, ui UI) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Info("Config reloaded", slog.Int("breakpoint_px", conf.BreakpointPx),
				slog.String("reveal_mode", conf.RevealMode))
			ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}
