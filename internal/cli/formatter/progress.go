package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planview/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// pct is a whole percentage and is clamped to [0,100].
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct int, width int) string {
	pct = domain.ClampProgress(pct)
	if width < 2 {
		width = 2
	}

	filled := pct * width / 100
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	var style = StyleGreen
	if pct < 33 {
		style = StyleRed
	} else if pct < 66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), pct)
}
