// Package background renders the drifting particle field drawn behind the dashboard content.
package background

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// Count is the number of particles generated per mount.
	Count = 80
	// MaxDelay is the exclusive upper bound of a particle's start delay, in seconds.
	MaxDelay = 30.0
	// Cycle is how long one particle takes to cross the field.
	Cycle = 20 * time.Second

	glyph = '·'
)

// Particle is immutable once generated.
type Particle struct {
	ID    int
	Left  float64 // horizontal position, percent in [0,100)
	Delay float64 // animation start delay, seconds in [0,MaxDelay)
}

// Generate returns Count particles with independently random positions and delays.
func Generate(rng *rand.Rand) []Particle {
	particles := make([]Particle, Count)
	for i := range particles {
		particles[i] = Particle{
			ID:    i,
			Left:  rng.Float64() * 100,
			Delay: rng.Float64() * MaxDelay,
		}
	}

	return particles
}

// Background holds one generated particle set and the animation clock. The set is created
// by New and never regenerated; only the clock moves.
type Background struct {
	particles []Particle
	elapsed   time.Duration
	style     lipgloss.Style
}

// New mounts a background. A nil rng draws a fresh random seed.
func New(rng *rand.Rand) *Background {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec
	}

	return &Background{
		particles: Generate(rng),
		style:     lipgloss.NewStyle().Faint(true),
	}
}

// Particles returns a copy of the mounted particle set.
func (b *Background) Particles() []Particle {
	return append([]Particle(nil), b.particles...)
}

func (b *Background) SetStyle(style lipgloss.Style) {
	b.style = style
}

// Advance moves the animation clock forward.
func (b *Background) Advance(d time.Duration) {
	if d > 0 {
		b.elapsed += d
	}
}

func (b *Background) Elapsed() time.Duration {
	return b.elapsed
}

// Canvas plots the particles that have started moving onto a width x height grid of plain
// runes. Particles rise from the bottom row to the top over one Cycle.
func (b *Background) Canvas(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	grid := make([][]rune, height)
	for row := range grid {
		grid[row] = []rune(strings.Repeat(" ", width))
	}

	now := b.elapsed.Seconds()
	cycle := Cycle.Seconds()
	for _, p := range b.particles {
		if now < p.Delay {
			continue
		}
		progress := math.Mod(now-p.Delay, cycle) / cycle
		row := height - 1 - int(progress*float64(height))
		col := int(p.Left / 100 * float64(width))
		if row < 0 || row >= height || col < 0 || col >= width {
			continue
		}
		grid[row][col] = glyph
	}

	rows := make([]string, height)
	for i, r := range grid {
		rows[i] = string(r)
	}

	return rows
}

// Composite draws the canvas into the blank tail of every foreground line, leaving any cell
// that holds foreground text untouched.
func (b *Background) Composite(fg string, width int) string {
	lines := strings.Split(fg, "\n")
	canvas := b.Canvas(width, len(lines))
	if canvas == nil {
		return fg
	}

	for i, line := range lines {
		plain := ansi.Strip(line)
		used := ansi.StringWidth(strings.TrimRight(plain, " "))
		if used >= width {
			continue
		}

		tail := []rune(canvas[i])[used:]
		if strings.TrimSpace(string(tail)) == "" {
			continue
		}

		lines[i] = ansi.Truncate(line, used, "") + ansi.ResetStyle + b.style.Render(string(tail))
	}

	return strings.Join(lines, "\n")
}
