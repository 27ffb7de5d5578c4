package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/pulse/internal/nav"
)

// NavigateMsg requests a tab change. Selecting a destination also dismisses the mobile menu.
type NavigateMsg struct {
	Tab nav.Tab
}

func Navigate(tab nav.Tab) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Tab: tab} }
}

// CloseMobileNavMsg requests the mobile sidebar overlay be closed.
type CloseMobileNavMsg struct{}

func CloseMobileNav() tea.Cmd {
	return func() tea.Msg { return CloseMobileNavMsg{} }
}

// ToggleMobileNavMsg is sent by the top bar menu button.
type ToggleMobileNavMsg struct{}

func ToggleMobileNav() tea.Cmd {
	return func() tea.Msg { return ToggleMobileNavMsg{} }
}

// AnimationTickMsg advances the decorative background.
type AnimationTickMsg struct {
	At    time.Time
	Frame time.Duration
}

func AnimationTick(fps int) tea.Cmd {
	if fps <= 0 {
		return nil
	}

	frame := time.Second / time.Duration(fps)

	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return AnimationTickMsg{At: t, Frame: frame}
	})
}
