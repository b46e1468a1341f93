package preview

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	curveFg   = lipgloss.Color("#ADD8E6")
	titleFg   = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	dimFg     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	curveStyle   = lipgloss.NewStyle().Foreground(curveFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(titleFg).Bold(true)
	captionStyle = lipgloss.NewStyle().Foreground(dimFg)
)
