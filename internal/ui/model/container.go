package model

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/pulse/internal/ui/styles"
)

// Container draws content inside a rounded border with the title embedded in the top edge.
// A height of zero sizes the container to its content.
func Container(title string, width int, height int, content string, active bool) string {
	if width <= 0 || height < 0 {
		return ""
	}

	var base lipgloss.Style
	if active {
		base = styles.ContainerStyleActive
	} else {
		base = styles.ContainerStyle
	}

	base = base.
		Border(styles.TitleBorder(styles.ContainerBorder, width, title)).
		Width(width)
	if height > 0 {
		base = base.Height(height)
	}

	return base.Render(content)
}
