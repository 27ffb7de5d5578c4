package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

type MarketViewAI struct {
	summary    string
	confidence float64
	volume     uint64
}

func NewMarketViewAI() *MarketViewAI {
	return &MarketViewAI{
		summary: "Risk appetite is improving. Breadth widened across large caps while crypto " +
			"majors held support. Expect range-bound trading ahead of the rate decision.",
		confidence: 0.78,
		volume:     182_400_000_000,
	}
}

func (w *MarketViewAI) ID() string    { return "marketview-ai" }
func (w *MarketViewAI) Title() string { return "MarketView AI" }
func (w *MarketViewAI) Tab() nav.Tab  { return nav.TabMarket }

func (w *MarketViewAI) Render(width int) string {
	var b strings.Builder
	b.WriteString(styles.WidgetAI.Render("AI Outlook"))
	b.WriteString("\n")
	b.WriteString(styles.WidgetValue.Render(wordwrap.String(w.summary, max(width, 1))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styles.WidgetLabel.Render("Confidence "),
		styles.WidgetPositive.Render(humanize.FtoaWithDigits(w.confidence*100, 1)+"%"),
	))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styles.WidgetLabel.Render("Volume     "),
		styles.WidgetValue.Render("$"+humanize.Comma(int64(w.volume))),
	))

	return b.String()
}
