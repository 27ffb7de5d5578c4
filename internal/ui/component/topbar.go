package component

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/pulse/internal/ui/command"
	"github.com/leighmacdonald/pulse/internal/ui/model"
	"github.com/leighmacdonald/pulse/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// TopBar sits above the content. On mobile layouts it carries the menu button that opens the
// sidebar overlay.
type TopBar struct {
	zones   *zone.Manager
	id      string
	started time.Time
	now     time.Time
}

func NewTopBar(zones *zone.Manager, started time.Time) *TopBar {
	return &TopBar{zones: zones, id: zones.NewPrefix() + "menu", started: started, now: started}
}

func (t *TopBar) Update(msg tea.Msg, vs model.ViewState) tea.Cmd {
	switch msg := msg.(type) {
	case command.AnimationTickMsg:
		t.now = msg.At
	case tea.MouseMsg:
		// The bar is hidden behind an open overlay, so its last zone must not react.
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || !vs.Mobile() || vs.MobileOpen {
			return nil
		}
		if t.zones.Get(t.id).InBounds(msg) {
			return command.ToggleMobileNav()
		}
	}

	return nil
}

// MenuZone is the bubblezone id of the mobile menu button.
func (t *TopBar) MenuZone() string {
	return t.id
}

// Uptime is the humanized time since the shell started.
func (t *TopBar) Uptime() string {
	if t.now.Sub(t.started) < time.Second {
		return "just now"
	}

	return strings.TrimSpace(humanize.RelTime(t.started, t.now, "", ""))
}

func (t *TopBar) View(vs model.ViewState, width int) string {
	if width <= 0 {
		return ""
	}

	var left string
	if vs.Mobile() {
		menu := t.zones.Mark(t.id, styles.TopBarMenu.Render(styles.IconMenu))
		left = lipgloss.JoinHorizontal(lipgloss.Top, menu,
			styles.LogoMark.Render(styles.IconLogo), " ", styles.LogoText.Render(appName))
	} else {
		left = styles.TopBarInfo.Render("Dashboard / ") + vs.ActiveTab.Label()
	}

	right := styles.LiveDot.Render(styles.IconLive) + styles.TopBarInfo.Render(" Live · up "+t.Uptime())

	inner := width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}

	return styles.TopBar.Width(width).Render(ansi.Truncate(line, max(inner, 0), ""))
}
