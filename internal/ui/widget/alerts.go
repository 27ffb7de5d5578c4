package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

type severity int

const (
	severityInfo severity = iota
	severityWarning
	severityCritical
)

func (s severity) style() lipgloss.Style {
	switch s {
	case severityCritical:
		return styles.WidgetCritical
	case severityWarning:
		return styles.WidgetWarning
	default:
		return styles.WidgetInfo
	}
}

func (s severity) String() string {
	switch s {
	case severityCritical:
		return "CRIT"
	case severityWarning:
		return "WARN"
	default:
		return "INFO"
	}
}

type alert struct {
	severity severity
	message  string
}

type SmartAlerts struct {
	alerts []alert
}

func NewSmartAlerts() *SmartAlerts {
	return &SmartAlerts{alerts: []alert{
		{severity: severityCritical, message: "SOL volume 4x above 30d average"},
		{severity: severityWarning, message: "@bearish_betty sentiment shift on TSLA"},
		{severity: severityInfo, message: "ETH gas fees below weekly median"},
		{severity: severityWarning, message: "BTC funding rate turning negative"},
	}}
}

func (w *SmartAlerts) ID() string    { return "smart-alerts" }
func (w *SmartAlerts) Title() string { return "Smart Alerts" }
func (w *SmartAlerts) Tab() nav.Tab  { return nav.TabAlerts }

func (w *SmartAlerts) Render(width int) string {
	rows := make([]string, 0, len(w.alerts))

	for _, item := range w.alerts {
		label := item.severity.style().Render(item.severity.String())
		body := wordwrap.String(item.message, max(width-lipgloss.Width(label)-1, 1))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, " ", styles.WidgetValue.Render(body)))
	}

	return strings.Join(rows, "\n")
}
