// Package sidebar implements the responsive collapse state of the navigation panel.
//
// Width classification is binary: viewports at least Breakpoint logical pixels wide are
// desktop, anything narrower is mobile. Entering (or staying in) the mobile class always
// forces the panel back to its expanded form since collapsing only exists on desktop.
package sidebar

// DefaultBreakpoint is the desktop/mobile threshold in logical pixels.
const DefaultBreakpoint = 1024

// Class is the result of classifying a viewport width.
type Class int

const (
	Desktop Class = iota
	Mobile
)

func (c Class) String() string {
	if c == Mobile {
		return "mobile"
	}

	return "desktop"
}

// Classify returns Mobile when width is below breakpoint.
func Classify(width int, breakpoint int) Class {
	if width < breakpoint {
		return Mobile
	}

	return Desktop
}

// State is the collapse axis plus the last observed width.
type State struct {
	Collapsed bool
	Width     int
	Class     Class
}

// Reduce applies a viewport width observation to prev. It is idempotent: applying the same
// width twice yields the same state.
func Reduce(prev State, width int, breakpoint int) State {
	next := prev
	next.Width = width
	next.Class = Classify(width, breakpoint)
	if next.Class == Mobile {
		next.Collapsed = false
	}

	return next
}

// Controller owns the collapse state for a single mounted sidebar.
type Controller struct {
	state      State
	breakpoint int
	mounted    bool
}

func NewController(breakpoint int) *Controller {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}

	return &Controller{breakpoint: breakpoint}
}

// Mount performs the initial classification.
func (c *Controller) Mount(width int) {
	c.mounted = true
	c.state = Reduce(c.state, width, c.breakpoint)
}

// Resize handles a viewport resize event.
func (c *Controller) Resize(width int) {
	if !c.mounted {
		c.Mount(width)

		return
	}

	c.state = Reduce(c.state, width, c.breakpoint)
}

// SetBreakpoint changes the threshold and reclassifies the last observed width.
func (c *Controller) SetBreakpoint(breakpoint int) {
	if breakpoint <= 0 || breakpoint == c.breakpoint {
		return
	}

	c.breakpoint = breakpoint
	if c.mounted {
		c.state = Reduce(c.state, c.state.Width, c.breakpoint)
	}
}

// ToggleCollapsed flips the collapse axis. It is only available on desktop viewports and
// reports whether anything changed.
func (c *Controller) ToggleCollapsed() bool {
	if !c.CanCollapse() {
		return false
	}

	c.state.Collapsed = !c.state.Collapsed

	return true
}

func (c *Controller) CanCollapse() bool {
	return c.state.Class == Desktop
}

func (c *Controller) Collapsed() bool {
	return c.state.Collapsed
}

func (c *Controller) IsMobile() bool {
	return c.state.Class == Mobile
}

func (c *Controller) Breakpoint() int {
	return c.breakpoint
}

func (c *Controller) State() State {
	return c.state
}
