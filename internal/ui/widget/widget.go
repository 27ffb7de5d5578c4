// Package widget holds the dashboard panels rendered inside the shell content area. The panels
// render fixed sample data; the shell only cares about their titles and rendered size.
package widget

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/pulse/internal/nav"
)

type Widget interface {
	// ID is the stable section identifier used for reveal tracking.
	ID() string
	Title() string
	// Tab is the navigation destination that scrolls this widget into view.
	Tab() nav.Tab
	Render(width int) string
}

// Default returns the dashboard widgets in the order they are laid out. The first three form the
// wide column on desktop layouts.
func Default() []Widget {
	return []Widget{
		NewInfluencerIntel(),
		NewAssetRadar(),
		NewNewsPulse(),
		NewSmartAlerts(),
		NewMarketViewAI(),
	}
}

func newUnstyledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderHeader(false).
		Headers(headers...)
}
