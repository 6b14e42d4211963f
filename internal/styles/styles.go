// Package styles contains Lip Gloss style definitions for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// SuccessStyle renders check passes.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1F8A4C", Dark: "#73F59F"})

	// ErrorStyle renders check failures and fatal CLI errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF8787"})

	// MutedStyle renders secondary detail like hex values.
	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#696969"})

	// NameStyle renders color names.
	NameStyle = lipgloss.NewStyle().Bold(true)
)

// Swatch renders a label centered on a block of the given background hex.
// The foreground is the caller's contrast pick.
func Swatch(bgHex, fgHex, label string, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bgHex)).
		Foreground(lipgloss.Color(fgHex)).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}
