package widget

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

type headline struct {
	source string
	title  string
	age    time.Duration
}

type NewsPulse struct {
	headlines []headline
}

func NewNewsPulse() *NewsPulse {
	return &NewsPulse{headlines: []headline{
		{source: "Reuters", title: "Central bank signals patience as inflation cools for a third month", age: 12 * time.Minute},
		{source: "CoinDesk", title: "Spot ETF inflows reach weekly high on renewed institutional demand", age: 47 * time.Minute},
		{source: "Bloomberg", title: "Chipmakers extend rally after record data center guidance", age: 2 * time.Hour},
		{source: "FT", title: "Energy stocks slip as crude inventories build unexpectedly", age: 5 * time.Hour},
	}}
}

func (w *NewsPulse) ID() string    { return "news-pulse" }
func (w *NewsPulse) Title() string { return "News Pulse" }
func (w *NewsPulse) Tab() nav.Tab  { return nav.TabNews }

func (w *NewsPulse) Render(width int) string {
	now := time.Now()
	items := make([]string, 0, len(w.headlines))

	for _, item := range w.headlines {
		published := strings.TrimSpace(humanize.RelTime(now.Add(-item.age), now, "ago", "from now"))
		meta := styles.WidgetLabel.Render(item.source + " · " + published)
		title := styles.WidgetValue.Render(wordwrap.String(item.title, max(width, 1)))
		items = append(items, title+"\n"+meta)
	}

	return strings.Join(items, "\n\n")
}
