package formatter

import (
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorBg     = lipgloss.Color("#282828")
	ColorBgSoft = lipgloss.Color("#504945")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// HintStyle maps a plan color hint ("blue", "green", ...) onto the palette.
// Hints without a close match fall back to the foreground color.
func HintStyle(hint string) lipgloss.Style {
	switch hint {
	case "green":
		return StyleGreen
	case "yellow":
		return StyleYellow
	case "red", "pink":
		return StyleRed
	case "blue", "indigo":
		return StyleBlue
	case "purple":
		return StylePurple
	case "orange":
		return StyleOrange
	case "gray", "grey":
		return StyleDim
	default:
		return StyleFg
	}
}
