package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// seriesColors color the stacked bar segments, one per category.
var seriesColors = []lipgloss.Color{
	"#89b4fa", "#a6e3a1", "#f9e2af", "#f38ba8", "#cba6f7", "#94e2d5", "#fab387",
}

func seriesColor(i int) lipgloss.Color {
	return seriesColors[i%len(seriesColors)]
}
