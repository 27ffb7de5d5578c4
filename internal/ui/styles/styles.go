package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayMid     = lipgloss.Color("#6b6b6b")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#eeeeee")
	Green       = lipgloss.Color("#4ade80")
	Red         = lipgloss.Color("#B8383B")
	Blue        = lipgloss.Color("#5885A2")
	Purple      = lipgloss.Color("#8650ac")
	Gold        = lipgloss.Color("#ffd700")
	ColourMuted = lipgloss.Color("240")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.RoundedBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Blue)

	SidebarContainer = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, true, false, false).
				BorderForeground(GrayDark).
				Background(Black)
	SidebarHeader = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(GrayDark).
			Padding(0, 1)
	SidebarFooter = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(GrayDark).
			Foreground(GrayMid).
			Align(lipgloss.Center)
	LogoMark      = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	LogoText      = lipgloss.NewStyle().Foreground(Whiter).Bold(true)
	SidebarButton = lipgloss.NewStyle().Foreground(GrayMid)

	NavItemActive = lipgloss.NewStyle().
			Foreground(Whiter).
			Background(GrayDark).
			Bold(true).
			Padding(0, 1)
	NavItemInactive = lipgloss.NewStyle().
			Foreground(GrayMid).
			Padding(0, 1)
	LiveDot = lipgloss.NewStyle().Foreground(Green)

	Backdrop     = lipgloss.NewStyle().Foreground(Gray).Faint(true)
	BackdropHint = lipgloss.NewStyle().Foreground(GrayMid).Italic(true)

	TopBar     = lipgloss.NewStyle().Foreground(White).Padding(0, 1)
	TopBarMenu = lipgloss.NewStyle().Foreground(Whiter).Bold(true).PaddingRight(1)
	TopBarInfo = lipgloss.NewStyle().Foreground(GrayMid)

	HeaderTitle    = lipgloss.NewStyle().Foreground(Whiter).Bold(true)
	HeaderSubtitle = lipgloss.NewStyle().Foreground(GrayMid)

	SectionPending = lipgloss.NewStyle().Foreground(Gray).Faint(true)

	WidgetLabel    = lipgloss.NewStyle().Foreground(GrayMid)
	WidgetValue    = lipgloss.NewStyle().Foreground(White)
	WidgetPositive = lipgloss.NewStyle().Foreground(Green)
	WidgetNegative = lipgloss.NewStyle().Foreground(Red)
	WidgetHeading  = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	WidgetCritical = lipgloss.NewStyle().Foreground(Red).Bold(true)
	WidgetWarning  = lipgloss.NewStyle().Foreground(Gold)
	WidgetInfo     = lipgloss.NewStyle().Foreground(Blue)
	WidgetAI       = lipgloss.NewStyle().Foreground(Purple).Bold(true)

	StatusHelp = lipgloss.NewStyle().Foreground(Gray).Padding(0, 1)

	IconLogo        = "◆"
	IconHome        = "⌂"
	IconInfluencers = "☺"
	IconAssets      = "↗"
	IconNews        = "≡"
	IconAlerts      = "!"
	IconMarket      = "▥"
	IconMenu        = "☰"
	IconClose       = "✕"
	IconLive        = "●"
)

// WrapX will wrap a centered string with the supplied character up to the length specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all <= 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all-all/2)
}

// TitleBorder embeds title into the top edge of border.
func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, " "+title+" ", border.Top)

	return border
}
