package ui

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/pulse/internal/background"
	"github.com/leighmacdonald/pulse/internal/config"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/reveal"
	"github.com/leighmacdonald/pulse/internal/sidebar"
	"github.com/leighmacdonald/pulse/internal/ui/command"
	"github.com/leighmacdonald/pulse/internal/ui/component"
	"github.com/leighmacdonald/pulse/internal/ui/input"
	"github.com/leighmacdonald/pulse/internal/ui/model"
	"github.com/leighmacdonald/pulse/internal/ui/styles"
	"github.com/leighmacdonald/pulse/internal/ui/widget"
	zone "github.com/lrstanley/bubblezone"
)

const topBarHeight = 1

var tabKeys = []struct {
	binding key.Binding
	tab     nav.Tab
}{
	{input.Default.Home, nav.TabHome},
	{input.Default.Influencer, nav.TabInfluencers},
	{input.Default.Assets, nav.TabAssets},
	{input.Default.News, nav.TabNews},
	{input.Default.Alerts, nav.TabAlerts},
	{input.Default.Market, nav.TabMarket},
}

type Option func(*Shell)

// WithInteractive marks whether the output can scroll and report geometry. Non interactive
// shells reveal every section at mount.
func WithInteractive(interactive bool) Option {
	return func(s *Shell) { s.interactive = interactive }
}

// WithRand seeds the decorative background.
func WithRand(rng *rand.Rand) Option {
	return func(s *Shell) { s.rng = rng }
}

func WithStartTime(started time.Time) Option {
	return func(s *Shell) { s.started = started }
}

// Shell is the top level model. It owns the navigation state and the mobile overlay flag and
// hands both down to the sidebar, top bar and content on every render.
type Shell struct {
	conf        config.Config
	nav         *nav.State
	unsubscribe func()
	mobileOpen  bool
	zones       *zone.Manager
	sidebar     *component.Sidebar
	topBar      *component.TopBar
	content     *component.Content
	background  *background.Background
	observer    *reveal.Observer
	sub         *reveal.Subscription
	help        help.Model
	showHelp    bool
	interactive bool
	rng         *rand.Rand
	started     time.Time
	width       int
	height      int
	mounted     bool
	ticking     bool
	closed      bool
}

func NewShell(conf config.Config, opts ...Option) *Shell {
	shell := &Shell{
		conf:        conf,
		interactive: true,
		started:     time.Now(),
		help:        help.New(),
	}
	for _, opt := range opts {
		opt(shell)
	}
	shell.interactive = shell.interactive && conf.RevealMode == config.RevealModeObserve

	shell.zones = zone.New()
	shell.nav = nav.NewState(conf.DefaultTab)
	shell.sidebar = component.NewSidebar(sidebar.NewController(conf.BreakpointPx), shell.zones)
	shell.topBar = component.NewTopBar(shell.zones, shell.started)
	shell.content = component.NewContent(widget.Default(), conf.CellHeightPx, shell.interactive)
	shell.content.SetReverseWheel(conf.ReverseScrollWheel)
	shell.content.SetActive(shell.nav.ActiveTab())
	shell.background = background.New(shell.rng)
	shell.background.SetStyle(lipgloss.NewStyle().Foreground(styles.Gray))
	shell.observer = reveal.New(reveal.Options{
		Threshold:    conf.RevealThreshold,
		MarginBottom: float64(conf.RevealMarginBottomPx),
		OnReveal:     onReveal,
	})
	shell.unsubscribe = shell.nav.Subscribe(shell.onTabChange)

	return shell
}

func (s *Shell) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("pulse")}
	if s.conf.AnimateBackground {
		s.ticking = true
		cmds = append(cmds, command.AnimationTick(s.conf.FPS))
	}

	return tea.Batch(cmds...)
}

func (s *Shell) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if s.closed {
		return s, nil
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
	case config.Config:
		return s, s.applyConfig(msg)
	case command.NavigateMsg:
		s.Navigate(msg.Tab)
	case command.CloseMobileNavMsg:
		s.CloseMobileNav()
	case command.ToggleMobileNavMsg:
		s.ToggleMobileNav()
	case command.AnimationTickMsg:
		s.topBar.Update(msg, s.viewState())
		if !s.conf.AnimateBackground {
			s.ticking = false

			return s, nil
		}
		s.background.Advance(msg.Frame)

		return s, command.AnimationTick(s.conf.FPS)
	case tea.KeyMsg:
		return s, s.updateKey(msg)
	case tea.MouseMsg:
		return s, s.updateMouse(msg)
	}

	return s, nil
}

func (s *Shell) updateKey(msg tea.KeyMsg) tea.Cmd {
	for _, tk := range tabKeys {
		if key.Matches(msg, tk.binding) {
			s.Navigate(tk.tab)

			return nil
		}
	}

	switch {
	case key.Matches(msg, input.Default.Quit):
		return tea.Quit
	case key.Matches(msg, input.Default.Help):
		s.showHelp = !s.showHelp
		s.layout()
	case key.Matches(msg, input.Default.NextTab):
		s.Navigate(s.nav.ActiveTab().Next())
	case key.Matches(msg, input.Default.PrevTab):
		s.Navigate(s.nav.ActiveTab().Prev())
	case key.Matches(msg, input.Default.Menu):
		s.ToggleMobileNav()
	case key.Matches(msg, input.Default.Top):
		s.content.GotoTop()
		s.scrolled()
	case key.Matches(msg, input.Default.Bottom):
		s.content.GotoBottom()
		s.scrolled()
	case key.Matches(msg, input.Default.Collapse), key.Matches(msg, input.Default.Back):
		return s.updateSidebar(msg)
	default:
		moved, cmd := s.content.Update(msg)
		if moved {
			s.scrolled()
		}

		return cmd
	}

	return nil
}

func (s *Shell) updateMouse(msg tea.MouseMsg) tea.Cmd {
	vs := s.viewState()
	if cmd := s.topBar.Update(msg, vs); cmd != nil {
		return cmd
	}

	collapsed := s.Collapsed()
	if cmd := s.updateSidebar(msg); cmd != nil || collapsed != s.Collapsed() {
		return cmd
	}

	// The backdrop swallows everything aimed at the content behind it.
	if vs.Mobile() && s.mobileOpen {
		return nil
	}

	moved, cmd := s.content.Update(msg)
	if moved {
		s.scrolled()
	}

	return cmd
}

func (s *Shell) updateSidebar(msg tea.Msg) tea.Cmd {
	collapsed := s.Collapsed()
	cmd := s.sidebar.Update(msg, s.viewState())
	if collapsed != s.Collapsed() {
		slog.Debug("Sidebar collapse toggled", slog.Bool("collapsed", s.Collapsed()))
		s.layout()
		s.checkReveal()
	}

	return cmd
}

// Navigate makes tab active and closes the mobile overlay in the same step.
func (s *Shell) Navigate(tab nav.Tab) bool {
	changed := s.nav.SetActiveTab(tab)
	s.mobileOpen = false

	return changed
}

// ToggleMobileNav flips the mobile overlay. It is only available on mobile layouts.
func (s *Shell) ToggleMobileNav() bool {
	if !s.MobileToggleAvailable() {
		return false
	}
	s.mobileOpen = !s.mobileOpen

	return true
}

func (s *Shell) CloseMobileNav() {
	s.mobileOpen = false
}

func (s *Shell) ActiveTab() nav.Tab {
	return s.nav.ActiveTab()
}

func (s *Shell) MobileOpen() bool {
	return s.mobileOpen
}

func (s *Shell) Collapsed() bool {
	return s.sidebar.Controller().Collapsed()
}

func (s *Shell) IsMobile() bool {
	return s.sidebar.Controller().IsMobile()
}

func (s *Shell) MobileToggleAvailable() bool {
	return s.mounted && s.IsMobile()
}

// ToggleCollapsed collapses or expands the desktop sidebar.
func (s *Shell) ToggleCollapsed() bool {
	if !s.sidebar.Controller().ToggleCollapsed() {
		return false
	}
	s.layout()
	s.checkReveal()

	return true
}

// Sections exposes the reveal state of the content sections.
func (s *Shell) Sections() []*reveal.Section {
	return s.content.Sections()
}

func (s *Shell) Background() *background.Background {
	return s.background
}

// RevealPolicy reports how sections are revealed. It is only meaningful after mount.
func (s *Shell) RevealPolicy() reveal.Policy {
	if s.sub == nil {
		return reveal.PolicyObserve
	}

	return s.sub.Policy()
}

// Close releases the reveal subscription and the mouse zones. The shell ignores all
// messages afterwards.
func (s *Shell) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if s.sub != nil {
		s.sub.Close()
	}
	s.unsubscribe()
	s.zones.Close()
	slog.Debug("Shell closed")
}

func (s *Shell) onTabChange(tab nav.Tab) {
	slog.Debug("Active tab changed", slog.String("tab", tab.String()))
	s.content.SetActive(tab)
	s.content.ScrollTo(tab)
	s.checkReveal()
}

func (s *Shell) resize(width int, height int) {
	s.width = width
	s.height = height
	px := s.conf.WidthPx(width)

	if !s.mounted {
		s.mount(px)

		return
	}

	s.sidebar.Controller().Resize(px)
	s.layout()
	s.checkReveal()
}

func (s *Shell) mount(widthPx int) {
	s.sidebar.Controller().Mount(widthPx)
	s.layout()
	s.sub = s.observer.Start(s.content, s.content)
	s.mounted = true
	s.checkReveal()
	s.content.Render()

	slog.Debug("Shell mounted",
		slog.String("class", s.sidebar.Controller().State().Class.String()),
		slog.String("reveal", s.sub.Policy().String()))
}

func (s *Shell) applyConfig(conf config.Config) tea.Cmd {
	s.conf = conf
	ctrl := s.sidebar.Controller()
	ctrl.SetBreakpoint(conf.BreakpointPx)
	if s.mounted {
		ctrl.Resize(conf.WidthPx(s.width))
	}
	s.content.SetReverseWheel(conf.ReverseScrollWheel)
	s.content.SetCellHeight(conf.CellHeightPx)
	s.layout()
	s.checkReveal()

	if conf.AnimateBackground && !s.ticking {
		s.ticking = true

		return command.AnimationTick(conf.FPS)
	}

	return nil
}

func (s *Shell) scrolled() {
	slog.Debug("Content scrolled", slog.Int("offset", s.content.YOffset()))
	s.checkReveal()
}

func (s *Shell) checkReveal() {
	if s.sub == nil {
		return
	}

	if s.sub.Check() > 0 {
		s.content.Render()
	}
}

func (s *Shell) viewState() model.ViewState {
	state := s.sidebar.Controller().State()

	return model.ViewState{
		Width:      s.width,
		Height:     s.height,
		Class:      state.Class,
		ActiveTab:  s.nav.ActiveTab(),
		MobileOpen: s.mobileOpen,
	}
}

func (s *Shell) layout() {
	if s.width <= 0 || s.height <= 0 {
		return
	}

	vs := s.viewState()
	width := s.width - s.sidebar.FlowWidth(vs)
	height := s.height - topBarHeight - lipgloss.Height(s.renderFooter(width))
	s.content.Resize(vs, width, height)
}

func (s *Shell) renderFooter(width int) string {
	s.help.Width = max(width-2, 0)
	if s.showHelp {
		return styles.StatusHelp.Render(s.help.FullHelpView(input.Default.FullHelp()))
	}

	return styles.StatusHelp.Render(s.help.ShortHelpView(input.Default.ShortHelp()))
}

func (s *Shell) View() string {
	if s.closed {
		return ""
	}
	if s.width <= 0 || s.height <= 0 {
		return "Initializing..."
	}

	vs := s.viewState()
	if vs.Mobile() && s.mobileOpen {
		panel := s.sidebar.View(vs)

		return s.zones.Scan(lipgloss.JoinHorizontal(lipgloss.Top,
			panel, s.sidebar.Backdrop(vs, s.width-lipgloss.Width(panel))))
	}

	width := s.width - s.sidebar.FlowWidth(vs)
	main := lipgloss.JoinVertical(lipgloss.Left,
		s.topBar.View(vs, width),
		s.background.Composite(s.content.View(), width),
		s.renderFooter(width))

	if !vs.Mobile() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, s.sidebar.View(vs), main)
	}

	return s.zones.Scan(main)
}

func onReveal(target reveal.Target) {
	if section, ok := target.(*reveal.Section); ok {
		slog.Debug("Section revealed", slog.String("section", section.ID))
	}
}

// logMsg is useful for debugging events. Tail the log file ~/.config/pulse/pulse.log
func logMsg(inMsg tea.Msg) {
	switch msg := inMsg.(type) {
	case command.AnimationTickMsg:
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			break
		}
		slog.Debug("Mouse event", slog.String("event", msg.String()))
	default:
		slog.Debug("Message received", slog.Any("msg", inMsg))
	}
}
