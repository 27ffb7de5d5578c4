// Package reveal flags content sections as revealed the first time enough of them scrolls
// into view.
//
// An Observer is started against a Document, which is asked once for its marked sections.
// Sections marked afterwards are not picked up automatically; callers that want them watched
// must hand them to Subscription.Observe explicitly. Every watched section is checked against
// the Root rectangle whenever Check is called and is dropped from the watch set as soon as it
// has been revealed.
package reveal

const (
	// DefaultThreshold is the visible fraction of a section required to reveal it.
	DefaultThreshold = 0.1
	// DefaultMarginBottom shrinks the bottom edge of the root, in logical pixels.
	DefaultMarginBottom = 50
)

// Rect is a vertical extent in logical pixels.
type Rect struct {
	Top    float64
	Height float64
}

func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Target is anything that can be revealed.
type Target interface {
	Bounds() Rect
	Reveal()
	Revealed() bool
}

// Document lists the targets currently marked for reveal-on-scroll.
type Document interface {
	Marked() []Target
}

// Root is the intersection root, normally the visible part of the scrolled content.
type Root interface {
	// Supported reports whether the host can provide viewport geometry at all.
	Supported() bool
	Rect() Rect
}

// Policy describes how a subscription decides visibility.
type Policy int

const (
	// PolicyObserve reveals targets as they intersect the root.
	PolicyObserve Policy = iota
	// PolicyImmediate reveals every target at start, used when the root is unsupported.
	PolicyImmediate
)

func (p Policy) String() string {
	if p == PolicyImmediate {
		return "immediate"
	}

	return "observe"
}

type Options struct {
	Threshold    float64
	MarginBottom float64
	// OnReveal is called once per target, after the target has been revealed.
	OnReveal func(Target)
}

type Observer struct {
	opts Options
}

func New(opts Options) *Observer {
	if opts.Threshold < 0 || opts.Threshold > 1 {
		opts.Threshold = DefaultThreshold
	}

	return &Observer{opts: opts}
}

// Start snapshots the marked targets of doc and begins watching them. When root is nil or
// unsupported, every target is revealed immediately and nothing is watched.
func (o *Observer) Start(doc Document, root Root) *Subscription {
	sub := &Subscription{
		opts:    o.opts,
		root:    root,
		watched: map[Target]struct{}{},
	}

	if root == nil || !root.Supported() {
		sub.policy = PolicyImmediate
	}

	sub.Observe(doc.Marked()...)

	return sub
}

// Subscription is the live set of watched targets. It must be closed when the owning view
// goes away.
type Subscription struct {
	opts    Options
	root    Root
	policy  Policy
	order   []Target
	watched map[Target]struct{}
	closed  bool
}

// Observe adds targets to the watch set. Already revealed targets are ignored.
func (s *Subscription) Observe(targets ...Target) {
	if s.closed {
		return
	}

	for _, target := range targets {
		if target == nil || target.Revealed() {
			continue
		}
		if _, found := s.watched[target]; found {
			continue
		}

		if s.policy == PolicyImmediate {
			s.reveal(target)

			continue
		}

		s.watched[target] = struct{}{}
		s.order = append(s.order, target)
	}
}

// Check evaluates every watched target against the current root and returns how many were
// revealed by this call.
func (s *Subscription) Check() int {
	if s.closed || s.policy == PolicyImmediate || len(s.order) == 0 {
		return 0
	}

	root := s.root.Rect()
	remaining := s.order[:0]
	revealed := 0

	for _, target := range s.order {
		if target.Revealed() {
			delete(s.watched, target)

			continue
		}

		if Intersects(root, target.Bounds(), s.opts.Threshold, s.opts.MarginBottom) {
			delete(s.watched, target)
			s.reveal(target)
			revealed++

			continue
		}

		remaining = append(remaining, target)
	}

	clear(s.order[len(remaining):])
	s.order = remaining

	return revealed
}

func (s *Subscription) reveal(target Target) {
	target.Reveal()
	if s.opts.OnReveal != nil {
		s.opts.OnReveal(target)
	}
}

// Close stops watching every target. It is safe to call more than once.
func (s *Subscription) Close() {
	if s.closed {
		return
	}

	s.closed = true
	clear(s.watched)
	clear(s.order)
	s.order = nil
	s.root = nil
}

func (s *Subscription) Closed() bool {
	return s.closed
}

// Watching returns the number of targets still pending observation.
func (s *Subscription) Watching() int {
	return len(s.order)
}

func (s *Subscription) Policy() Policy {
	return s.policy
}

// Intersects reports whether at least threshold of target is visible inside root after
// shrinking the bottom of root by marginBottom.
func Intersects(root Rect, target Rect, threshold float64, marginBottom float64) bool {
	top := root.Top
	bottom := root.Bottom() - marginBottom
	if bottom < top {
		return false
	}

	if target.Height <= 0 {
		return target.Top >= top && target.Top <= bottom
	}

	visible := min(target.Bottom(), bottom) - max(target.Top, top)
	if visible <= 0 {
		return false
	}

	return visible/target.Height >= threshold
}

// Status of a Section.
type Status int

const (
	Pending Status = iota
	Revealed
)

func (s Status) String() string {
	if s == Revealed {
		return "revealed"
	}

	return "pending"
}

// Section is a Target whose bounds are assigned by a layout pass.
type Section struct {
	ID     string
	status Status
	bounds Rect
}

func NewSection(id string) *Section {
	return &Section{ID: id}
}

func (s *Section) Bounds() Rect {
	return s.bounds
}

func (s *Section) SetBounds(r Rect) {
	s.bounds = r
}

// Reveal moves the section to Revealed. There is no way back.
func (s *Section) Reveal() {
	s.status = Revealed
}

func (s *Section) Revealed() bool {
	return s.status == Revealed
}

func (s *Section) Status() Status {
	return s.status
}
