package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/pulse/internal/config"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
	shell   *Shell
}

func New(ctx context.Context, conf config.Config, opts ...Option) *UI {
	shell := NewShell(conf, opts...)

	return &UI{
		shell: shell,
		program: tea.NewProgram(
			shell,
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(conf.FPS)),
	}
}

// Run blocks until the program exits. The shell is closed on every exit path.
func (t UI) Run() error {
	defer t.shell.Close()

	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}

// Snapshot renders a single frame of the given size without a terminal. Every section is
// revealed since nothing can scroll.
func Snapshot(conf config.Config, width int, height int, opts ...Option) string {
	shell := NewShell(conf, append(opts, WithInteractive(false))...)
	defer shell.Close()

	shell.Update(tea.WindowSizeMsg{Width: width, Height: height})

	return shell.View()
}
