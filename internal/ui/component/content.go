package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/reveal"
	"github.com/leighmacdonald/pulse/internal/ui/model"
	"github.com/leighmacdonald/pulse/internal/ui/styles"
	"github.com/leighmacdonald/pulse/internal/ui/widget"
	"github.com/muesli/reflow/truncate"
)

const (
	HeaderSectionID = "header"

	wheelLines = 3
	// Number of widgets placed in the wide column on desktop layouts.
	wideWidgets = 3

	headerTitle    = "Market Intelligence"
	headerSubtitle = "Real-time signals across influencers, assets and news"
)

type panel struct {
	widget  widget.Widget
	section *reveal.Section
}

// Content is the scrollable dashboard area. It is both the reveal document, listing every
// marked section, and the reveal root, reporting the visible window in logical pixels.
type Content struct {
	viewport     viewport.Model
	header       *reveal.Section
	panels       []panel
	offsets      map[nav.Tab]int
	active       nav.Tab
	cellHeight   int
	interactive  bool
	reverseWheel bool
	mobile       bool
	width        int
}

func NewContent(widgets []widget.Widget, cellHeight int, interactive bool) *Content {
	panels := make([]panel, 0, len(widgets))
	for _, w := range widgets {
		panels = append(panels, panel{widget: w, section: reveal.NewSection(w.ID())})
	}

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false

	return &Content{
		viewport:    vp,
		header:      reveal.NewSection(HeaderSectionID),
		panels:      panels,
		offsets:     map[nav.Tab]int{},
		cellHeight:  max(cellHeight, 1),
		interactive: interactive,
	}
}

// Marked lists every section participating in reveal-on-scroll.
func (c *Content) Marked() []reveal.Target {
	targets := make([]reveal.Target, 0, len(c.panels)+1)
	targets = append(targets, c.header)
	for _, p := range c.panels {
		targets = append(targets, p.section)
	}

	return targets
}

// Sections returns the header followed by the widget sections.
func (c *Content) Sections() []*reveal.Section {
	sections := []*reveal.Section{c.header}
	for _, p := range c.panels {
		sections = append(sections, p.section)
	}

	return sections
}

// Supported reports whether visibility can be observed. Non interactive output cannot scroll.
func (c *Content) Supported() bool {
	return c.interactive && c.viewport.Height > 0
}

// Rect is the visible window of the content in logical pixels.
func (c *Content) Rect() reveal.Rect {
	return reveal.Rect{
		Top:    float64(c.viewport.YOffset * c.cellHeight),
		Height: float64(c.viewport.Height * c.cellHeight),
	}
}

func (c *Content) SetCellHeight(height int) {
	c.cellHeight = max(height, 1)
	c.Render()
}

func (c *Content) SetReverseWheel(reverse bool) {
	c.reverseWheel = reverse
}

// Resize applies a new content area size and recomputes the layout.
func (c *Content) Resize(vs model.ViewState, width int, height int) {
	c.width = width
	c.mobile = vs.Mobile()
	c.active = vs.ActiveTab
	c.viewport.Width = width
	c.viewport.Height = max(height, 0)
	c.Render()
}

func (c *Content) SetActive(tab nav.Tab) {
	c.active = tab
	c.Render()
}

// ScrollTo moves the section belonging to tab to the top of the viewport.
func (c *Content) ScrollTo(tab nav.Tab) {
	c.viewport.SetYOffset(c.offsets[tab])
}

func (c *Content) GotoTop() {
	c.viewport.GotoTop()
}

func (c *Content) GotoBottom() {
	c.viewport.GotoBottom()
}

func (c *Content) YOffset() int {
	return c.viewport.YOffset
}

// Update handles scrolling and reports whether the visible window moved.
func (c *Content) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := c.viewport.YOffset

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		lines := wheelLines
		if c.reverseWheel {
			lines = -lines
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			c.viewport.SetYOffset(c.viewport.YOffset + lines)
		case tea.MouseButtonWheelUp:
			c.viewport.SetYOffset(c.viewport.YOffset - lines)
		default:
			return false, nil
		}
	case tea.KeyMsg:
		c.viewport, cmd = c.viewport.Update(msg)
	}

	return c.viewport.YOffset != before, cmd
}

func (c *Content) View() string {
	if c.width <= 0 || c.viewport.Height <= 0 {
		return ""
	}

	return c.viewport.View()
}

// Render lays out the header and widgets, records each section's bounds and refreshes the
// viewport content. Pending sections keep their final size so revealing never shifts layout.
func (c *Content) Render() {
	if c.width <= 0 {
		return
	}

	header := c.renderHeader(c.width)
	headerRows := lipgloss.Height(header)
	c.header.SetBounds(c.rect(0, headerRows))
	c.offsets[nav.TabHome] = 0

	start := headerRows + 1
	var body string
	if c.mobile || len(c.panels) <= wideWidgets {
		body = c.column(c.panels, c.width, start)
	} else {
		wideWidth := c.width*8/12 - 1
		narrowWidth := c.width - wideWidth - 2
		left := c.column(c.panels[:wideWidgets], wideWidth, start)
		right := c.column(c.panels[wideWidgets:], narrowWidth, start)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}

	c.viewport.SetContent(header + "\n\n" + body)
}

func (c *Content) column(panels []panel, width int, start int) string {
	blocks := make([]string, 0, len(panels))
	row := start
	for _, p := range panels {
		block := c.renderPanel(p, width)
		height := lipgloss.Height(block)
		p.section.SetBounds(c.rect(row, height))
		c.offsets[p.widget.Tab()] = row
		row += height + 1
		blocks = append(blocks, block)
	}

	return strings.Join(blocks, "\n\n")
}

func (c *Content) renderPanel(p panel, width int) string {
	inner := max(width-2, 1)
	body := p.widget.Render(inner)
	if !p.section.Revealed() {
		body = lipgloss.Place(inner, lipgloss.Height(body), lipgloss.Center, lipgloss.Center,
			styles.SectionPending.Render("· · ·"))
	}

	return model.Container(p.widget.Title(), inner, 0, body, p.widget.Tab() == c.active)
}

func (c *Content) renderHeader(width int) string {
	title := styles.HeaderTitle.Render(truncate.String(headerTitle, uint(width)))
	subtitle := styles.HeaderSubtitle.Render(truncate.StringWithTail(headerSubtitle, uint(width), "…"))
	if !c.header.Revealed() {
		return lipgloss.Place(width, 2, lipgloss.Left, lipgloss.Center, styles.SectionPending.Render("· · ·"))
	}

	return title + "\n" + subtitle
}

func (c *Content) rect(row int, rows int) reveal.Rect {
	return reveal.Rect{Top: float64(row * c.cellHeight), Height: float64(rows * c.cellHeight)}
}
