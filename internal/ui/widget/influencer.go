package widget

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
)

type influencer struct {
	handle    string
	followers int64
	mentions  int
	sentiment float64
}

type InfluencerIntel struct {
	influencers []influencer
}

func NewInfluencerIntel() *InfluencerIntel {
	return &InfluencerIntel{influencers: []influencer{
		{handle: "@macro_maven", followers: 1_284_000, mentions: 342, sentiment: 0.72},
		{handle: "@chartwhisperer", followers: 861_500, mentions: 198, sentiment: -0.18},
		{handle: "@onchain_oracle", followers: 645_220, mentions: 154, sentiment: 0.41},
		{handle: "@yield_hunter", followers: 402_900, mentions: 97, sentiment: 0.05},
		{handle: "@bearish_betty", followers: 233_100, mentions: 88, sentiment: -0.63},
	}}
}

func (w *InfluencerIntel) ID() string    { return "influencer-intel" }
func (w *InfluencerIntel) Title() string { return "Influencer Intel" }
func (w *InfluencerIntel) Tab() nav.Tab  { return nav.TabInfluencers }

func (w *InfluencerIntel) Render(width int) string {
	tbl := newUnstyledTable("Handle", "Followers", "Mentions", "Sentiment").
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.WidgetHeading
			}
			if col == 3 && row >= 0 && row < len(w.influencers) {
				return sentimentStyle(w.influencers[row].sentiment)
			}

			return styles.WidgetValue
		})

	for _, inf := range w.influencers {
		tbl.Row(
			truncate.StringWithTail(inf.handle, 16, "…"),
			humanize.Comma(inf.followers),
			strconv.Itoa(inf.mentions),
			strconv.FormatFloat(inf.sentiment, 'f', 2, 64),
		)
	}

	return tbl.Render()
}

func sentimentStyle(value float64) lipgloss.Style {
	switch {
	case value > 0.1:
		return styles.WidgetPositive
	case value < -0.1:
		return styles.WidgetNegative
	default:
		return styles.WidgetValue
	}
}
