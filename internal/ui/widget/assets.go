package widget

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/ui/styles"
)

type asset struct {
	symbol string
	price  float64
	change float64
	signal string
}

type AssetRadar struct {
	assets []asset
}

func NewAssetRadar() *AssetRadar {
	return &AssetRadar{assets: []asset{
		{symbol: "BTC", price: 67_412.18, change: 2.41, signal: "Accumulate"},
		{symbol: "ETH", price: 3_288.54, change: -1.12, signal: "Hold"},
		{symbol: "SOL", price: 148.02, change: 6.87, signal: "Momentum"},
		{symbol: "NVDA", price: 1_042.67, change: 0.38, signal: "Hold"},
		{symbol: "TSLA", price: 176.9, change: -3.55, signal: "Watch"},
	}}
}

func (w *AssetRadar) ID() string    { return "asset-radar" }
func (w *AssetRadar) Title() string { return "Asset Radar" }
func (w *AssetRadar) Tab() nav.Tab  { return nav.TabAssets }

func (w *AssetRadar) Render(width int) string {
	tbl := newUnstyledTable("Asset", "Price", "24h", "Signal").
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.WidgetHeading
			}
			if col == 2 && row >= 0 && row < len(w.assets) {
				if w.assets[row].change < 0 {
					return styles.WidgetNegative
				}

				return styles.WidgetPositive
			}

			return styles.WidgetValue
		})

	for _, a := range w.assets {
		tbl.Row(a.symbol, "$"+humanize.CommafWithDigits(a.price, 2), fmt.Sprintf("%+.2f%%", a.change), a.signal)
	}

	return tbl.Render()
}
