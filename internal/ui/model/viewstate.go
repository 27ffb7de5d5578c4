package model

import (
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/sidebar"
)

// ViewState is the snapshot of shell state handed down to child components when rendering.
// Components never write to it; changes travel back up as commands.
type ViewState struct {
	// Width and Height are the terminal size in cells.
	Width  int
	Height int
	Class      sidebar.Class
	ActiveTab  nav.Tab
	MobileOpen bool
}

func (v ViewState) Mobile() bool {
	return v.Class == sidebar.Mobile
}
