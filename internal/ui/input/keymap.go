package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit       key.Binding
	Help       key.Binding
	Back       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Home       key.Binding
	Influencer key.Binding
	Assets     key.Binding
	News       key.Binding
	Alerts     key.Binding
	Market     key.Binding
	Collapse   key.Binding
	Menu       key.Binding
	Top        key.Binding
	Bottom     key.Binding
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Close menu"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next Tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev Tab"),
	),
	Home: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Home"),
	),
	Influencer: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Influencers"),
	),
	Assets: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Assets"),
	),
	News: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "News"),
	),
	Alerts: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "Alerts"),
	),
	Market: key.NewBinding(
		key.WithKeys("6"),
		key.WithHelp("6", "MarketView"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "Collapse sidebar"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Menu"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "Top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "Bottom"),
	),
}

// ShortHelp implements help.KeyMap.
func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.NextTab, m.Collapse, m.Menu, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Home, m.Influencer, m.Assets, m.News, m.Alerts, m.Market},
		{m.NextTab, m.PrevTab, m.Top, m.Bottom},
		{m.Collapse, m.Menu, m.Back, m.Help, m.Quit},
	}
}
