package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")  // node keys
	colorGray = lipgloss.Color("245") // arrows
	colorDim  = lipgloss.Color("240") // muted notes
)

var (
	styleNode  = lipgloss.NewStyle().Foreground(colorCyan)
	styleArrow = lipgloss.NewStyle().Foreground(colorGray)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)

// renderPath formats one path as "a -> b -> c" with styled nodes.
func renderPath(path []string) string {
	var b strings.Builder
	for i, node := range path {
		if i > 0 {
			b.WriteString(styleArrow.Render(" -> "))
		}
		b.WriteString(styleNode.Render(node))
	}
	return b.String()
}
