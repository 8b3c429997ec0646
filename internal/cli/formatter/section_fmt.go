package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planview/internal/document"
	"github.com/alexanderramin/planview/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	gridCardWidth = 36
	gridGap       = 2
	weekBarWidth  = 30
)

// FormatTitle renders the document header: icon, title and subtitle.
func FormatTitle(doc *document.Document) string {
	title := StyleBlue.Render(document.Symbol(doc.Icon)) + " " + Bold(doc.Title)
	if doc.Subtitle == "" {
		return title
	}
	return title + "\n" + Dim(doc.Subtitle)
}

// FormatTabBar renders the six tab captions with the active one highlighted.
// Each caption is prefixed with its number key. When the full bar is wider
// than width, inactive tabs shrink to their number key; width 0 never shrinks.
func FormatTabBar(active domain.Tab, width int) string {
	full := tabBar(active, false)
	if width <= 0 || lipgloss.Width(full) <= width {
		return full
	}
	return tabBar(active, true)
}

func tabBar(active domain.Tab, compact bool) string {
	activeStyle := lipgloss.NewStyle().Foreground(ColorBg).Background(ColorHeader).Bold(true)
	parts := make([]string, len(domain.AllTabs))
	for i, tab := range domain.AllTabs {
		switch {
		case tab == active:
			parts[i] = activeStyle.Render(fmt.Sprintf(" %d %s ", i+1, tab.Label()))
		case compact:
			parts[i] = Dim(fmt.Sprintf(" %d ", i+1))
		default:
			parts[i] = Dim(fmt.Sprintf(" %d %s ", i+1, tab.Label()))
		}
	}
	return strings.Join(parts, Dim("│"))
}

// FormatSection renders one section. width is the available terminal
// width; 0 means unknown, in which case nothing is wrapped and grids
// collapse to a single column.
func FormatSection(sec *document.Section, width int) string {
	if sec == nil {
		return ""
	}
	if len(sec.Blocks) == 0 {
		return Dim("Nothing to show.") + "\n"
	}
	parts := make([]string, 0, len(sec.Blocks))
	for _, b := range sec.Blocks {
		if s := formatBlock(b, width); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// FormatDocument renders every section in tab order, each under its tab caption.
func FormatDocument(doc *document.Document, width int) string {
	var b strings.Builder
	b.WriteString(FormatTitle(doc))
	b.WriteString("\n\n")
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		b.WriteString(StylePurple.Render(fmt.Sprintf("━━ %d. %s ━━", i+1, sec.Title)))
		b.WriteString("\n\n")
		b.WriteString(FormatSection(sec, width))
		b.WriteString("\n")
	}
	return b.String()
}

func formatBlock(b document.Block, width int) string {
	switch v := b.(type) {
	case document.StatCards:
		return formatStatCards(v, width)
	case document.Card:
		return formatCard(v, width)
	case document.CardGrid:
		return formatGrid(v, width)
	case document.Paragraph:
		text := wrap(v.Text, width)
		if v.Emphasis {
			return StyleFg.Render(text)
		}
		return text
	case document.IconList:
		return formatIconList(v)
	case document.NumberedList:
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			lines[i] = StyleBlue.Render(fmt.Sprintf("(%d)", item.Number)) + " " + item.Text
		}
		return strings.Join(lines, "\n")
	case document.BadgeRow:
		return formatBadges(v.Badges)
	case document.Subsection:
		body := formatBlocks(v.Body, width)
		if body == "" {
			return Bold(v.Heading)
		}
		return Bold(v.Heading) + "\n" + body
	case document.Tree:
		return formatTree(v)
	case document.WeekCard:
		return formatWeek(v)
	case document.Checklist:
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			lines[i] = StyleGreen.Render("✔") + " " + item
		}
		return strings.Join(lines, "\n")
	case document.Bullets:
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			lines[i] = "• " + item
		}
		return strings.Join(lines, "\n")
	}
	return ""
}

func formatBlocks(blocks []document.Block, width int) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if s := formatBlock(b, width); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func formatCard(c document.Card, width int) string {
	title := c.Title
	if c.Icon != "" {
		title = document.Symbol(c.Icon) + " " + title
	}
	var b strings.Builder
	b.WriteString(Header(title))
	if c.Description != "" {
		b.WriteString("\n")
		b.WriteString(Dim(c.Description))
	}
	inner := width
	if inner > 0 {
		inner -= 2
	}
	if body := formatCardBody(c.Body, inner); body != "" {
		b.WriteString("\n\n")
		b.WriteString(Indent(body, 2))
	}
	return b.String()
}

// formatCardBody stacks a card's blocks with a blank line between them.
func formatCardBody(blocks []document.Block, width int) string {
	var parts []string
	for _, blk := range blocks {
		s := formatBlock(blk, width)
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n\n")
}

func gridColumns(width int) int {
	if width <= 0 {
		return 1
	}
	cols := (width + gridGap) / (gridCardWidth + gridGap + 4)
	if cols < 1 {
		return 1
	}
	if cols > 3 {
		return 3
	}
	return cols
}

func formatGrid(g document.CardGrid, width int) string {
	cols := gridColumns(width)
	boxes := make([]string, len(g.Cards))
	for i, c := range g.Cards {
		boxes[i] = formatGridCard(c, cols > 1)
	}
	if cols == 1 {
		return strings.Join(boxes, "\n")
	}

	var rows []string
	for start := 0; start < len(boxes); start += cols {
		end := start + cols
		if end > len(boxes) {
			end = len(boxes)
		}
		row := make([]string, 0, 2*(end-start))
		for i, box := range boxes[start:end] {
			if i > 0 {
				row = append(row, strings.Repeat(" ", gridGap))
			}
			row = append(row, box)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func formatGridCard(c document.Card, fixedWidth bool) string {
	title := HintStyle(c.Color).Render(document.Symbol(c.Icon)) + " " + Bold(c.Title)
	var lines []string
	if c.Description != "" {
		lines = append(lines, Dim(c.Description))
	}
	bodyWidth := 0
	if fixedWidth {
		bodyWidth = gridCardWidth
	}
	if body := formatBlocks(c.Body, max(bodyWidth-2, 0)); body != "" {
		lines = append(lines, body)
	}
	if len(lines) == 0 {
		return RenderBox(title, bodyWidth)
	}
	return RenderBox(title+"\n"+strings.Join(lines, "\n"), bodyWidth)
}

func formatStatCards(s document.StatCards, width int) string {
	boxes := make([]string, len(s.Cards))
	for i, c := range s.Cards {
		head := Dim(c.Title)
		if c.Icon != "" {
			head += " " + StyleDim.Render(document.Symbol(c.Icon))
		}
		content := head + "\n" + StyleHeader.Render(c.Value)
		if c.Caption != "" {
			content += "\n" + Dim(c.Caption)
		}
		boxes[i] = RenderBox(content, 0)
	}
	if width <= 0 {
		return strings.Join(boxes, "\n")
	}
	row := make([]string, 0, 2*len(boxes))
	for i, box := range boxes {
		if i > 0 {
			row = append(row, strings.Repeat(" ", gridGap))
		}
		row = append(row, box)
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Top, row...)
	if lipgloss.Width(joined) > width {
		return strings.Join(boxes, "\n")
	}
	return joined
}

func formatIconList(l document.IconList) string {
	lines := make([]string, len(l.Items))
	for i, item := range l.Items {
		line := HintStyle(item.Color).Render(document.Symbol(item.Icon)) + " " + item.Label
		if item.Detail != "" {
			line += Dim("  · " + item.Detail)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func formatBadges(badges []document.Badge) string {
	parts := make([]string, len(badges))
	for i, b := range badges {
		parts[i] = RenderBadge(b)
	}
	return strings.Join(parts, "  ")
}

func formatTree(t document.Tree) string {
	lines := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		line := strings.Repeat("  ", l.Depth) + l.Label
		if l.Comment != "" {
			line += " " + Dim("# "+l.Comment)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func formatWeek(w document.WeekCard) string {
	marker := StyleBlue.Render(fmt.Sprintf("%2d", w.Number))
	head := marker + "  " + Bold(w.Title) + "  " + RenderBadge(w.Badge)
	lines := []string{
		head,
		"    " + Dim(w.Subtitle),
		"    " + RenderProgress(w.Progress, weekBarWidth),
	}
	if len(w.Tasks) > 0 {
		lines = append(lines, "    "+formatBadges(w.Tasks))
	}
	return strings.Join(lines, "\n")
}
