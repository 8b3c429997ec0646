// Package document maps plan data tables into a renderer-neutral layout:
// six sections, one per tab, each a list of blocks. Terminal and HTML
// renderers consume the Document and never read the plan directly.
package document

import (
	"fmt"

	"github.com/alexanderramin/planview/internal/domain"
)

// Headings used across sections.
const (
	HeadingContext         = "Contexte du projet"
	HeadingGeneral         = "Objectif général"
	HeadingSpecific        = "Objectifs spécifiques"
	HeadingSpecificDesc    = "Les fonctionnalités clés à implémenter"
	HeadingRoles           = "Types d'utilisateurs"
	HeadingFeatureDetails  = "Fonctionnalités détaillées"
	HeadingServices        = "Services"
	HeadingTimelineDesc    = "Répartition des tâches par semaine"
	HeadingPackages        = "Packages supplémentaires"
	HeadingResults         = "Résultat attendu"
	defaultArchitectureTag = "Architecture"
)

// progressHighThreshold is the progress above which a week badge uses
// the default (emphasized) variant.
const progressHighThreshold = 50

// Section is the rendered content of one tab.
type Section struct {
	Tab    domain.Tab
	Title  string
	Blocks []Block
}

// Document is the full composed plan document.
type Document struct {
	Title    string
	Subtitle string
	Icon     string
	Sections []Section
}

// Section returns the section for t, or nil if t is unknown.
func (d *Document) Section(t domain.Tab) *Section {
	for i := range d.Sections {
		if d.Sections[i].Tab == t {
			return &d.Sections[i]
		}
	}
	return nil
}

// Compose builds the document for p. The result depends only on p, so
// composing the same plan twice yields equal documents.
func Compose(p *domain.Plan) *Document {
	doc := &Document{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Icon:     p.Icon,
	}
	for _, tab := range domain.AllTabs {
		doc.Sections = append(doc.Sections, Section{
			Tab:    tab,
			Title:  tab.Label(),
			Blocks: composeTab(tab, p),
		})
	}
	return doc
}

func composeTab(tab domain.Tab, p *domain.Plan) []Block {
	switch tab {
	case domain.TabOverview:
		return composeOverview(p.Overview)
	case domain.TabObjectives:
		return composeObjectives(p.Objectives)
	case domain.TabFeatures:
		return composeFeatures(p.Features)
	case domain.TabArchitecture:
		return composeArchitecture(p.Architecture)
	case domain.TabTimeline:
		return composeTimeline(p.Timeline)
	case domain.TabTechnologies:
		return composeTechnologies(p.Technologies)
	}
	return nil
}

func composeOverview(o domain.Overview) []Block {
	var blocks []Block
	if len(o.Cards) > 0 {
		blocks = append(blocks, StatCards{Cards: o.Cards})
	}
	if o.Context == "" && len(o.Highlights) == 0 {
		return blocks
	}

	var body []Block
	if o.Context != "" {
		body = append(body, Paragraph{Text: o.Context})
	}
	if len(o.Highlights) > 0 {
		items := make([]IconItem, len(o.Highlights))
		for i, h := range o.Highlights {
			items[i] = IconItem{Icon: h.Icon, Color: h.Color, Label: h.Label}
		}
		body = append(body, IconList{Items: items})
	}
	return append(blocks, Card{Title: HeadingContext, Icon: "book-open", Body: body})
}

func composeObjectives(o domain.Objectives) []Block {
	var blocks []Block
	if o.General != "" {
		blocks = append(blocks, Card{
			Title: HeadingGeneral,
			Icon:  "target",
			Body:  []Block{Paragraph{Text: o.General, Emphasis: true}},
		})
	}

	items := make([]NumberedItem, len(o.Specific))
	for i, text := range o.Specific {
		items[i] = NumberedItem{Number: i + 1, Text: text}
	}
	blocks = append(blocks, Card{
		Title:       HeadingSpecific,
		Description: HeadingSpecificDesc,
		Body:        []Block{NumberedList{Items: items}},
	})

	if len(o.Roles) > 0 {
		grid := CardGrid{}
		for _, r := range o.Roles {
			grid.Cards = append(grid.Cards, Card{
				Title: r.Name,
				Icon:  r.Icon,
				Color: r.Color,
				Body:  []Block{Paragraph{Text: r.Description}},
			})
		}
		blocks = append(blocks, Card{Title: HeadingRoles, Body: []Block{grid}})
	}
	return blocks
}

func composeFeatures(f domain.Features) []Block {
	grid := CardGrid{}
	for _, feat := range f.Items {
		grid.Cards = append(grid.Cards, Card{
			Title: feat.Title,
			Icon:  feat.Icon,
			Color: feat.Color,
			Body:  []Block{Paragraph{Text: feat.Description}},
		})
	}
	blocks := []Block{grid}

	if len(f.Details) > 0 {
		var body []Block
		for _, d := range f.Details {
			sub := Subsection{Heading: d.Heading}
			if len(d.Badges) > 0 {
				sub.Body = append(sub.Body, BadgeRow{Badges: badges(d.Badges, BadgeSecondary)})
			}
			if d.Text != "" {
				sub.Body = append(sub.Body, Paragraph{Text: d.Text})
			}
			body = append(body, sub)
		}
		blocks = append(blocks, Card{Title: HeadingFeatureDetails, Body: body})
	}
	return blocks
}

func composeArchitecture(a domain.Architecture) []Block {
	var blocks []Block
	if a.Name != "" || len(a.Tree) > 0 {
		name := a.Name
		if name == "" {
			name = defaultArchitectureTag
		}
		card := Card{Title: name, Description: a.Description, Icon: "layers"}
		if len(a.Tree) > 0 {
			card.Body = []Block{Tree{Lines: a.Tree}}
		}
		blocks = append(blocks, card)
	}

	if len(a.Services) > 0 {
		title := a.ServicesTitle
		if title == "" {
			title = HeadingServices
		}
		items := make([]IconItem, len(a.Services))
		for i, s := range a.Services {
			items[i] = IconItem{Icon: s.Icon, Color: s.Color, Label: s.Name, Detail: s.Role}
		}
		blocks = append(blocks, Card{Title: title, Body: []Block{IconList{Items: items}}})
	}
	return blocks
}

// TimelineHeading returns the timeline card title for a plan of n weeks.
func TimelineHeading(n int) string {
	return fmt.Sprintf("Planning de réalisation - %d semaines", n)
}

func composeTimeline(weeks []domain.TimelineWeek) []Block {
	body := make([]Block, 0, len(weeks))
	for _, w := range weeks {
		body = append(body, composeWeek(w))
	}
	return []Block{Card{
		Title:       TimelineHeading(len(weeks)),
		Description: HeadingTimelineDesc,
		Body:        body,
	}}
}

func composeWeek(w domain.TimelineWeek) WeekCard {
	pct := w.ClampedProgress()
	variant := BadgeSecondary
	if pct > progressHighThreshold {
		variant = BadgeDefault
	}
	return WeekCard{
		Number:   w.Week,
		Title:    w.Title,
		Subtitle: fmt.Sprintf("Semaine %d", w.Week),
		Progress: pct,
		Badge:    Badge{Text: fmt.Sprintf("%d%%", pct), Variant: variant},
		Tasks:    badges(w.Tasks, BadgeOutline),
	}
}

func composeTechnologies(t domain.TechStack) []Block {
	grid := CardGrid{}
	for _, tech := range t.Items {
		grid.Cards = append(grid.Cards, Card{
			Title:       tech.Name,
			Description: tech.Category,
			Icon:        tech.Icon,
			Color:       "blue",
		})
	}
	blocks := []Block{grid}

	if len(t.Packages) > 0 {
		title := t.PackagesTitle
		if title == "" {
			title = HeadingPackages
		}
		var body []Block
		for _, g := range t.Packages {
			body = append(body, Subsection{Heading: g.Heading, Body: []Block{Bullets{Items: g.Items}}})
		}
		blocks = append(blocks, Card{Title: title, Body: body})
	}

	if len(t.Results) > 0 {
		blocks = append(blocks, Card{
			Title: HeadingResults,
			Icon:  "trophy",
			Body:  []Block{Checklist{Items: t.Results}},
		})
	}
	return blocks
}

func badges(texts []string, v BadgeVariant) []Badge {
	out := make([]Badge, len(texts))
	for i, t := range texts {
		out[i] = Badge{Text: t, Variant: v}
	}
	return out
}
