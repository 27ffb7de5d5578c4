package ui

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/pulse/internal/config"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/reveal"
	"github.com/leighmacdonald/pulse/internal/ui/command"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

// 8px cells: 180 columns is 1440px and 100 columns is 800px.
const (
	desktopCols = 180
	mobileCols  = 100
)

func testConfig() config.Config {
	conf := config.Default()
	conf.AnimateBackground = false

	return conf
}

func newTestShell(t *testing.T, conf config.Config, opts ...Option) *Shell {
	t.Helper()

	opts = append([]Option{
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithStartTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}, opts...)
	shell := NewShell(conf, opts...)
	t.Cleanup(shell.Close)

	return shell
}

func resize(shell *Shell, width int, height int) {
	shell.Update(tea.WindowSizeMsg{Width: width, Height: height})
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func section(t *testing.T, shell *Shell, id string) *reveal.Section {
	t.Helper()

	for _, s := range shell.Sections() {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("unknown section %s", id)

	return nil
}

func TestShellResizeAndNavigate(t *testing.T) {
	shell := newTestShell(t, testConfig())

	resize(shell, desktopCols, 50)
	require.False(t, shell.IsMobile())
	require.False(t, shell.Collapsed())
	require.False(t, shell.MobileOpen())
	require.Equal(t, nav.TabHome, shell.ActiveTab())

	require.True(t, shell.Navigate(nav.TabAssets))
	require.Equal(t, nav.TabAssets, shell.ActiveTab())

	resize(shell, mobileCols, 50)
	require.True(t, shell.IsMobile())
	require.False(t, shell.Collapsed())
	require.True(t, shell.MobileToggleAvailable())

	require.True(t, shell.ToggleMobileNav())
	require.True(t, shell.MobileOpen())

	shell.Navigate(nav.TabNews)
	require.Equal(t, nav.TabNews, shell.ActiveTab())
	require.False(t, shell.MobileOpen())
}

func TestNavigateSameTabStillClosesOverlay(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, mobileCols, 40)

	require.True(t, shell.ToggleMobileNav())
	require.False(t, shell.Navigate(nav.TabHome))
	require.False(t, shell.MobileOpen())
}

func TestMobileToggleIgnoredOnDesktop(t *testing.T) {
	shell := newTestShell(t, testConfig())
	require.False(t, shell.ToggleMobileNav(), "not mounted")

	resize(shell, desktopCols, 40)
	require.False(t, shell.MobileToggleAvailable())
	require.False(t, shell.ToggleMobileNav())
	require.False(t, shell.MobileOpen())
}

func TestCollapseOnlyOnDesktop(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, desktopCols, 40)

	require.True(t, shell.ToggleCollapsed())
	require.True(t, shell.Collapsed())

	resize(shell, mobileCols, 40)
	require.False(t, shell.Collapsed())
	require.False(t, shell.ToggleCollapsed())
	require.False(t, shell.Collapsed())

	resize(shell, desktopCols, 40)
	require.False(t, shell.Collapsed(), "collapse is not restored")
}

func TestKeyBindings(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, desktopCols, 40)

	shell.Update(runes("4"))
	require.Equal(t, nav.TabNews, shell.ActiveTab())

	shell.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, nav.TabAlerts, shell.ActiveTab())

	shell.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, nav.TabNews, shell.ActiveTab())

	shell.Update(runes("["))
	require.True(t, shell.Collapsed())

	shell.Update(runes("m"))
	require.False(t, shell.MobileOpen())

	_, cmd := shell.Update(runes("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestEscapeClosesOverlay(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, mobileCols, 40)

	shell.Update(runes("m"))
	require.True(t, shell.MobileOpen())

	_, cmd := shell.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, command.CloseMobileNavMsg{}, msg)

	shell.Update(msg)
	require.False(t, shell.MobileOpen())
}

func TestNavigateMessage(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, mobileCols, 40)
	shell.Update(command.ToggleMobileNavMsg{})
	require.True(t, shell.MobileOpen())

	shell.Update(command.NavigateMsg{Tab: nav.TabMarket})
	require.Equal(t, nav.TabMarket, shell.ActiveTab())
	require.False(t, shell.MobileOpen())
}

func TestCollapsedSidebarHidesLabels(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, desktopCols, 40)

	view := shell.View()
	require.Contains(t, view, "Influencers")
	require.Contains(t, view, "Pulse v2.0")

	require.True(t, shell.ToggleCollapsed())
	view = shell.View()
	require.NotContains(t, view, "Influencers")
	require.NotContains(t, view, "Pulse v2.0")
}

func TestMobileOverlayRendering(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, mobileCols, 40)

	view := shell.View()
	require.NotContains(t, view, "Pulse v2.0")
	require.NotContains(t, view, "esc to close")

	require.True(t, shell.ToggleMobileNav())
	view = shell.View()
	require.Contains(t, view, "Pulse v2.0")
	require.Contains(t, view, "esc to close")

	shell.CloseMobileNav()
	require.NotContains(t, shell.View(), "esc to close")
}

func TestRevealOnScroll(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, desktopCols, 16)
	require.Equal(t, reveal.PolicyObserve, shell.RevealPolicy())

	require.True(t, section(t, shell, "header").Revealed())
	require.True(t, section(t, shell, "influencer-intel").Revealed())
	require.False(t, section(t, shell, "asset-radar").Revealed())
	require.False(t, section(t, shell, "news-pulse").Revealed())

	shell.Navigate(nav.TabNews)
	require.True(t, section(t, shell, "news-pulse").Revealed())

	shell.Update(runes("g"))
	require.True(t, section(t, shell, "news-pulse").Revealed(), "revealed sections never hide again")
}

func TestImmediateRevealWhenNotInteractive(t *testing.T) {
	shell := newTestShell(t, testConfig(), WithInteractive(false))
	resize(shell, desktopCols, 16)

	require.Equal(t, reveal.PolicyImmediate, shell.RevealPolicy())
	for _, s := range shell.Sections() {
		require.True(t, s.Revealed(), s.ID)
	}
}

func TestImmediateRevealMode(t *testing.T) {
	conf := testConfig()
	conf.RevealMode = config.RevealModeImmediate
	shell := newTestShell(t, conf)
	resize(shell, desktopCols, 16)

	require.Equal(t, reveal.PolicyImmediate, shell.RevealPolicy())
	for _, s := range shell.Sections() {
		require.True(t, s.Revealed(), s.ID)
	}
}

func TestParticlesStableAcrossUpdates(t *testing.T) {
	conf := testConfig()
	conf.AnimateBackground = true
	shell := newTestShell(t, conf)
	before := shell.Background().Particles()

	resize(shell, desktopCols, 40)
	shell.Navigate(nav.TabAssets)
	shell.Update(command.AnimationTickMsg{At: time.Now(), Frame: time.Second})
	resize(shell, mobileCols, 40)
	shell.ToggleMobileNav()

	require.Equal(t, before, shell.Background().Particles())
	require.Equal(t, time.Second, shell.Background().Elapsed())
}

func TestConfigUpdateReclassifies(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, 150, 40)
	require.False(t, shell.IsMobile())

	conf := testConfig()
	conf.BreakpointPx = 1280
	shell.Update(conf)
	require.True(t, shell.IsMobile())
}

func TestCloseReleasesSubscription(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, desktopCols, 16)
	require.Positive(t, shell.sub.Watching())

	shell.Close()
	shell.Close()
	require.True(t, shell.sub.Closed())
	require.Zero(t, shell.sub.Watching())

	_, cmd := shell.Update(command.NavigateMsg{Tab: nav.TabNews})
	require.Nil(t, cmd)
	require.Equal(t, nav.TabHome, shell.ActiveTab())
	require.Empty(t, shell.View())
}

func TestSnapshot(t *testing.T) {
	out := Snapshot(testConfig(), desktopCols, 40)
	require.Contains(t, out, "Market Intelligence")
	require.Contains(t, out, "@macro_maven")
	require.Contains(t, out, "CRIT")
	require.NotContains(t, out, "· · ·")
	require.Len(t, strings.Split(out, "\n"), 40)
}

// renderedZone renders a frame and waits for the zone manager to record id.
func renderedZone(t *testing.T, shell *Shell, id string) *zone.ZoneInfo {
	t.Helper()

	shell.View()

	var info *zone.ZoneInfo
	require.Eventually(t, func() bool {
		info = shell.zones.Get(id)

		return info != nil
	}, time.Second, 5*time.Millisecond, id)

	return info
}

func click(shell *Shell, info *zone.ZoneInfo) tea.Cmd {
	_, cmd := shell.Update(tea.MouseMsg{
		X:      info.StartX,
		Y:      info.StartY,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})

	return cmd
}

func wheelDown(shell *Shell) {
	shell.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
}

func TestBackdropClickClosesOverlay(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, mobileCols, 40)
	require.True(t, shell.ToggleMobileNav())

	cmd := click(shell, renderedZone(t, shell, shell.sidebar.BackdropZone()))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, command.CloseMobileNavMsg{}, msg)

	shell.Update(msg)
	require.False(t, shell.MobileOpen())
}

func TestNavItemClickNavigatesAndClosesOverlay(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, mobileCols, 40)
	require.True(t, shell.ToggleMobileNav())

	cmd := click(shell, renderedZone(t, shell, shell.sidebar.NavZone(nav.TabAlerts)))
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, command.NavigateMsg{Tab: nav.TabAlerts}, msg)

	shell.Update(msg)
	require.Equal(t, nav.TabAlerts, shell.ActiveTab())
	require.False(t, shell.MobileOpen())
}

func TestSidebarButtonClick(t *testing.T) {
	t.Run("desktop collapses", func(t *testing.T) {
		shell := newTestShell(t, testConfig())
		resize(shell, desktopCols, 40)

		cmd := click(shell, renderedZone(t, shell, shell.sidebar.ButtonZone()))
		require.Nil(t, cmd)
		require.True(t, shell.Collapsed())
	})

	t.Run("mobile closes", func(t *testing.T) {
		shell := newTestShell(t, testConfig())
		resize(shell, mobileCols, 40)
		require.True(t, shell.ToggleMobileNav())

		cmd := click(shell, renderedZone(t, shell, shell.sidebar.ButtonZone()))
		require.NotNil(t, cmd)
		shell.Update(cmd())
		require.False(t, shell.MobileOpen())
		require.False(t, shell.Collapsed())
	})
}

func TestMenuButtonClickOpensOverlay(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, mobileCols, 40)

	cmd := click(shell, renderedZone(t, shell, shell.topBar.MenuZone()))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, command.ToggleMobileNavMsg{}, msg)

	shell.Update(msg)
	require.True(t, shell.MobileOpen())
}

func TestHiddenMenuButtonIgnoredWhileOverlayOpen(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, mobileCols, 40)
	menu := renderedZone(t, shell, shell.topBar.MenuZone())

	require.True(t, shell.ToggleMobileNav())
	shell.View()

	require.Nil(t, click(shell, menu))
	require.True(t, shell.MobileOpen())
}

func TestWheelSwallowedWhileOverlayOpen(t *testing.T) {
	shell := newTestShell(t, testConfig())
	resize(shell, mobileCols, 16)
	require.True(t, shell.ToggleMobileNav())

	wheelDown(shell)
	require.Zero(t, shell.content.YOffset())

	shell.CloseMobileNav()
	wheelDown(shell)
	require.Positive(t, shell.content.YOffset())
}
