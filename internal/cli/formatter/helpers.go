package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planview/internal/document"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box. A positive width fixes
// the inner width and wraps content to it.
func RenderBox(content string, width int) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(1).
		PaddingRight(1)

	if width > 0 {
		boxStyle = boxStyle.Width(width)
	}
	return boxStyle.Render(content)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Indent prefixes every non-empty line of s with n spaces.
func Indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

// RenderBadge renders a badge according to its variant.
// Outline badges are prefixed with "◦ " so rows stay readable without color.
func RenderBadge(b document.Badge) string {
	switch b.Variant {
	case document.BadgeDefault:
		return lipgloss.NewStyle().
			Foreground(ColorBg).
			Background(ColorGreen).
			Bold(true).
			Render("[" + b.Text + "]")
	case document.BadgeOutline:
		return StyleBlue.Render("◦ " + b.Text)
	default:
		return lipgloss.NewStyle().
			Foreground(ColorFg).
			Background(ColorBgSoft).
			Render("[" + b.Text + "]")
	}
}

// wrap soft-wraps text to width; width <= 0 leaves it untouched.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
