package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/sidebar"
	"github.com/leighmacdonald/pulse/internal/ui/command"
	"github.com/leighmacdonald/pulse/internal/ui/input"
	"github.com/leighmacdonald/pulse/internal/ui/model"
	"github.com/leighmacdonald/pulse/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

const (
	SidebarExpandedWidth  = 24
	SidebarCollapsedWidth = 7

	appName    = "Pulse"
	appVersion = "Pulse v2.0"
)

var tabIcons = map[nav.Tab]string{
	nav.TabHome:        styles.IconHome,
	nav.TabInfluencers: styles.IconInfluencers,
	nav.TabAssets:      styles.IconAssets,
	nav.TabNews:        styles.IconNews,
	nav.TabAlerts:      styles.IconAlerts,
	nav.TabMarket:      styles.IconMarket,
}

// Sidebar renders the navigation panel. It owns the collapse controller, while the active tab and
// the mobile open flag are passed in through the view state.
type Sidebar struct {
	ctrl   *sidebar.Controller
	zones  *zone.Manager
	prefix string
	items  []nav.Tab
}

func NewSidebar(ctrl *sidebar.Controller, zones *zone.Manager) *Sidebar {
	return &Sidebar{ctrl: ctrl, zones: zones, prefix: zones.NewPrefix(), items: nav.Tabs()}
}

func (s *Sidebar) Controller() *sidebar.Controller {
	return s.ctrl
}

// NavZone is the bubblezone id of the nav item for tab.
func (s *Sidebar) NavZone(tab nav.Tab) string {
	return s.prefix + "nav-" + tab.String()
}

// ButtonZone is the bubblezone id of the header button: collapse on desktop, close on mobile.
func (s *Sidebar) ButtonZone() string {
	return s.prefix + "button"
}

func (s *Sidebar) BackdropZone() string {
	return s.prefix + "backdrop"
}

// Visible reports whether the panel is on screen. On mobile layouts it only appears while open.
func (s *Sidebar) Visible(vs model.ViewState) bool {
	return !vs.Mobile() || vs.MobileOpen
}

// PanelWidth is the rendered width of the panel in cells.
func (s *Sidebar) PanelWidth() int {
	if s.ctrl.Collapsed() {
		return SidebarCollapsedWidth
	}

	return SidebarExpandedWidth
}

// FlowWidth is the number of columns the panel takes away from the content. Mobile panels
// overlay the content instead.
func (s *Sidebar) FlowWidth(vs model.ViewState) int {
	if vs.Mobile() {
		return 0
	}

	return s.PanelWidth()
}

func (s *Sidebar) Update(msg tea.Msg, vs model.ViewState) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || !s.Visible(vs) {
			return nil
		}
		for _, tab := range s.items {
			if s.zones.Get(s.NavZone(tab)).InBounds(msg) {
				return command.Navigate(tab)
			}
		}
		if s.zones.Get(s.ButtonZone()).InBounds(msg) {
			if vs.Mobile() {
				return command.CloseMobileNav()
			}
			s.ctrl.ToggleCollapsed()

			return nil
		}
		if vs.Mobile() && vs.MobileOpen && s.zones.Get(s.BackdropZone()).InBounds(msg) {
			return command.CloseMobileNav()
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Collapse):
			s.ctrl.ToggleCollapsed()
		case key.Matches(msg, input.Default.Back):
			if vs.Mobile() && vs.MobileOpen {
				return command.CloseMobileNav()
			}
		}
	}

	return nil
}

func (s *Sidebar) View(vs model.ViewState) string {
	if !s.Visible(vs) || vs.Height <= 0 {
		return ""
	}

	inner := s.PanelWidth() - 1
	collapsed := s.ctrl.Collapsed()

	header := s.renderHeader(vs, inner, collapsed)
	items := s.renderItems(vs, inner, collapsed)
	footer := s.renderFooter(inner, collapsed)

	spacer := vs.Height - lipgloss.Height(header) - lipgloss.Height(items) - lipgloss.Height(footer)
	parts := []string{header, items}
	if spacer > 0 {
		parts = append(parts, strings.Repeat("\n", spacer-1))
	}
	parts = append(parts, footer)

	return styles.SidebarContainer.
		Width(inner).
		Height(vs.Height).
		MaxHeight(vs.Height).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Backdrop covers the content behind an open mobile panel. Clicking it closes the panel.
func (s *Sidebar) Backdrop(vs model.ViewState, width int) string {
	if !vs.Mobile() || !vs.MobileOpen || width <= 0 || vs.Height <= 0 {
		return ""
	}

	hint := styles.BackdropHint.Render(truncate.String("esc to close", uint(width)))
	area := lipgloss.Place(width, vs.Height, lipgloss.Center, lipgloss.Center, hint,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(styles.Gray))

	return s.zones.Mark(s.BackdropZone(), area)
}

func (s *Sidebar) renderHeader(vs model.ViewState, width int, collapsed bool) string {
	var button string
	switch {
	case vs.Mobile():
		button = styles.IconClose
	case collapsed:
		button = "»"
	default:
		button = "«"
	}
	button = s.zones.Mark(s.ButtonZone(), styles.SidebarButton.Render(button))

	logo := styles.LogoMark.Render(styles.IconLogo)
	if collapsed {
		return styles.SidebarHeader.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, logo, " ", button))
	}

	logo = lipgloss.JoinHorizontal(lipgloss.Top, logo, " ", styles.LogoText.Render(appName))
	gap := max(width-2-lipgloss.Width(logo)-lipgloss.Width(button), 1)

	return styles.SidebarHeader.Width(width).Render(logo + strings.Repeat(" ", gap) + button)
}

func (s *Sidebar) renderItems(vs model.ViewState, width int, collapsed bool) string {
	rows := make([]string, 0, len(s.items))
	for _, tab := range s.items {
		label := tabIcons[tab]
		if !collapsed {
			label += " " + truncate.StringWithTail(tab.Label(), uint(max(width-4, 1)), "…")
		}

		style := styles.NavItemInactive
		if tab == vs.ActiveTab {
			style = styles.NavItemActive
		}

		rows = append(rows, s.zones.Mark(s.NavZone(tab), style.Width(width).Render(label)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *Sidebar) renderFooter(width int, collapsed bool) string {
	live := styles.LiveDot.Render(styles.IconLive)
	if collapsed {
		return styles.SidebarFooter.Width(width).Render(live)
	}

	return styles.SidebarFooter.Width(width).Render(appVersion + "\n" + live + " Live")
}
