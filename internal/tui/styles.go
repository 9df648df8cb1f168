// Package tui renders the calendar heat-map in the terminal and feeds the
// simulation controller from the bubbletea event loop.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"lifecal/internal/surface"
)

// Styles bundles the lipgloss styling for the calendar view.
type Styles struct {
	Title    lipgloss.Style
	Board    lipgloss.Style
	DayLabel lipgloss.Style
	Footer   lipgloss.Style
	StatusOn lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the standard theme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A")).
			MarginBottom(1),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2a3850")).
			Padding(0, 1),
		DayLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6a737d")).
			Width(4),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6a737d")).
			MarginTop(1),
		StatusOn: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4a5568")),
	}
}

// cellBlock renders one calendar cell as a colored two-column block.
func cellBlock(c surface.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(string(c))).
		Render("  ")
}

// emptyBlock fills grid positions before the first or after the last date.
const emptyBlock = "  "
