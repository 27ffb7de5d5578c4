// Package nav holds the active navigation tab shared by the sidebar and the content area.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTab = errors.New("invalid tab")

// Tab identifies one navigation destination.
type Tab int

const (
	TabHome Tab = iota
	TabInfluencers
	TabAssets
	TabNews
	TabAlerts
	TabMarket
)

// DefaultTab is active when the application starts.
const DefaultTab = TabHome

var tabIDs = [...]string{"home", "influencers", "assets", "news", "alerts", "market"}

var tabLabels = [...]string{"Home", "Influencers", "Assets", "News", "Alerts", "MarketView"}

// Tabs returns every tab in navigation order.
func Tabs() []Tab {
	return []Tab{TabHome, TabInfluencers, TabAssets, TabNews, TabAlerts, TabMarket}
}

// InvalidTabError is returned when an identifier is not one of the known tabs.
type InvalidTabError struct {
	Value string
}

func (e InvalidTabError) Error() string {
	return fmt.Sprintf("%s: %q (valid: %s)", ErrInvalidTab, e.Value, strings.Join(tabIDs[:], ", "))
}

func (e InvalidTabError) Unwrap() error {
	return ErrInvalidTab
}

// ParseTab converts an identifier such as "news" into a Tab.
func ParseTab(value string) (Tab, error) {
	id := strings.ToLower(strings.TrimSpace(value))
	for i, known := range tabIDs {
		if known == id {
			return Tab(i), nil
		}
	}

	return DefaultTab, InvalidTabError{Value: value}
}

func (t Tab) Valid() bool {
	return t >= TabHome && t <= TabMarket
}

// String returns the identifier, e.g. "assets".
func (t Tab) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tab(%d)", int(t))
	}

	return tabIDs[t]
}

// Label is the human readable name shown in the sidebar.
func (t Tab) Label() string {
	if !t.Valid() {
		return ""
	}

	return tabLabels[t]
}

func (t Tab) Next() Tab {
	return (t + 1) % Tab(len(tabIDs))
}

func (t Tab) Prev() Tab {
	return (t - 1 + Tab(len(tabIDs))) % Tab(len(tabIDs))
}

// State owns the active tab. SetActiveTab is the only way to change it; any number of
// readers may query it or subscribe to changes.
type State struct {
	active    Tab
	listeners map[int]func(Tab)
	nextID    int
}

func NewState(initial Tab) *State {
	if !initial.Valid() {
		initial = DefaultTab
	}

	return &State{active: initial, listeners: map[int]func(Tab){}}
}

func (s *State) ActiveTab() Tab {
	return s.active
}

// SetActiveTab changes the active tab and notifies subscribers. Setting the current value
// again is a no-op and returns false. Invalid tabs are ignored.
func (s *State) SetActiveTab(tab Tab) bool {
	if !tab.Valid() || tab == s.active {
		return false
	}

	s.active = tab
	for _, listener := range s.listeners {
		listener(tab)
	}

	return true
}

// Subscribe registers fn to be called after every change. The returned func removes it.
func (s *State) Subscribe(fn func(Tab)) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		delete(s.listeners, id)
	}
}
