package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/planview/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a dim rule under the header.
// Widths are measured on visible text, so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = StyleHeader.Render(h)
	}
	writeRow(&b, styled, widths)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, rule, widths)

	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", max(w-lipgloss.Width(cell), 0)+colGap))
		}
	}
	b.WriteString("\n")
}

// FormatPlanList renders the plan catalog. The built-in plan is marked and
// has no creation date.
func FormatPlanList(plans []*domain.StoredPlan) string {
	if len(plans) == 0 {
		return Dim("No plans.") + "\n"
	}
	rows := make([][]string, len(plans))
	for i, p := range plans {
		id := StyleGreen.Render(p.DisplayID())
		created := Dim("-")
		source := p.Source
		if p.IsBuiltin() {
			id += " " + Dim("(builtin)")
			source = Dim("catalog")
		} else if !p.CreatedAt.IsZero() {
			created = p.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		rows[i] = []string{
			id,
			p.Plan.Title,
			strconv.Itoa(len(p.Plan.Timeline)),
			source,
			created,
		}
	}
	return RenderTable([]string{"ID", "TITLE", "WEEKS", "SOURCE", "CREATED"}, rows)
}

// FormatTabList renders the tab identifiers with their number keys and
// captions. The default tab is marked.
func FormatTabList(def domain.Tab) string {
	rows := make([][]string, len(domain.AllTabs))
	for i, tab := range domain.AllTabs {
		name := string(tab)
		if tab == def {
			name += " " + StyleGreen.Render("*")
		}
		rows[i] = []string{StyleBlue.Render(strconv.Itoa(i + 1)), name, tab.Label()}
	}
	return RenderTable([]string{"KEY", "TAB", "LABEL"}, rows)
}
