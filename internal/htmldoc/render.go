// Package htmldoc renders a composed plan document as one self-contained
// HTML page. Tabs are radio inputs styled with CSS, so switching tabs needs
// no script, no URL routing, and no query parameters.
package htmldoc

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/alexanderramin/planview/internal/document"
	"github.com/alexanderramin/planview/internal/domain"
)

//go:embed templates/*.gohtml templates/style.css
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.gohtml").
		Funcs(template.FuncMap{
			"kind":  blockKind,
			"emoji": document.Emoji,
		}).
		ParseFS(templateFS, "templates/*.gohtml"),
)

var styleSheet = template.CSS(mustRead("templates/style.css"))

func mustRead(name string) string {
	data, err := templateFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// Options controls page rendering.
type Options struct {
	// Active is the tab checked on load. Invalid or empty means overview.
	Active domain.Tab
	// Lang is the page language attribute. Defaults to "fr".
	Lang string
}

type tabView struct {
	ID      domain.Tab
	Label   string
	Checked bool
	Section *document.Section
}

type pageData struct {
	Lang     string
	Title    string
	Subtitle string
	Icon     string
	CSS      template.CSS
	Tabs     []tabView
}

// Render writes the HTML page for doc to w.
func Render(w io.Writer, doc *document.Document, opts Options) error {
	active := opts.Active
	if !active.Valid() {
		active = domain.TabOverview
	}
	lang := opts.Lang
	if lang == "" {
		lang = "fr"
	}

	data := pageData{
		Lang:     lang,
		Title:    doc.Title,
		Subtitle: doc.Subtitle,
		Icon:     document.Emoji(doc.Icon),
		CSS:      styleSheet,
	}
	for _, tab := range domain.AllTabs {
		sec := doc.Section(tab)
		if sec == nil {
			sec = &document.Section{Tab: tab, Title: tab.Label()}
		}
		data.Tabs = append(data.Tabs, tabView{
			ID:      tab,
			Label:   tab.Label(),
			Checked: tab == active,
			Section: sec,
		})
	}

	// w receives nothing when the template fails.
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering html page: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing html page: %w", err)
	}
	return nil
}

func blockKind(b document.Block) string {
	switch b.(type) {
	case document.StatCards:
		return "stats"
	case document.Card:
		return "card"
	case document.CardGrid:
		return "grid"
	case document.Paragraph:
		return "paragraph"
	case document.IconList:
		return "icons"
	case document.NumberedList:
		return "numbered"
	case document.BadgeRow:
		return "badges"
	case document.Subsection:
		return "subsection"
	case document.Tree:
		return "tree"
	case document.WeekCard:
		return "week"
	case document.Checklist:
		return "checklist"
	case document.Bullets:
		return "bullets"
	}
	return ""
}
