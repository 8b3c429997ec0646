package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planview/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateHeader(schema)...)
	errs = append(errs, validateOverview(&schema.Overview)...)
	errs = append(errs, validateObjectives(&schema.Objectives)...)
	errs = append(errs, validateFeatures(&schema.Features)...)
	errs = append(errs, validateArchitecture(&schema.Architecture)...)
	errs = append(errs, validateTimeline(schema.Timeline)...)
	errs = append(errs, validateTechnologies(&schema.Technologies)...)

	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateHeader(schema *ImportSchema) []error {
	var errs []error

	if blank(schema.ShortID) {
		errs = append(errs, fmt.Errorf("short_id is required"))
	} else if err := domain.ValidateShortID(NormalizeShortID(schema.ShortID)); err != nil {
		errs = append(errs, fmt.Errorf("short_id: %w", err))
	}
	if blank(schema.Title) {
		errs = append(errs, fmt.Errorf("title is required"))
	}

	return errs
}

func validateOverview(o *domain.Overview) []error {
	var errs []error

	for i, c := range o.Cards {
		prefix := fmt.Sprintf("overview.cards[%d]", i)
		if blank(c.Title) {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if blank(c.Value) {
			errs = append(errs, fmt.Errorf("%s.value is required", prefix))
		}
	}
	for i, h := range o.Highlights {
		if blank(h.Label) {
			errs = append(errs, fmt.Errorf("overview.highlights[%d].label is required", i))
		}
	}

	return errs
}

func validateObjectives(o *domain.Objectives) []error {
	var errs []error

	for i, text := range o.Specific {
		if blank(text) {
			errs = append(errs, fmt.Errorf("objectives.specific[%d] must not be empty", i))
		}
	}
	for i, r := range o.Roles {
		if blank(r.Name) {
			errs = append(errs, fmt.Errorf("objectives.roles[%d].name is required", i))
		}
	}

	return errs
}

func validateFeatures(f *domain.Features) []error {
	var errs []error

	for i, feat := range f.Items {
		prefix := fmt.Sprintf("features.items[%d]", i)
		if blank(feat.Title) {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if blank(feat.Description) {
			errs = append(errs, fmt.Errorf("%s.description is required", prefix))
		}
	}
	for i, d := range f.Details {
		prefix := fmt.Sprintf("features.details[%d]", i)
		if blank(d.Heading) {
			errs = append(errs, fmt.Errorf("%s.heading is required", prefix))
		}
		for j, b := range d.Badges {
			if blank(b) {
				errs = append(errs, fmt.Errorf("%s.badges[%d] must not be empty", prefix, j))
			}
		}
	}

	return errs
}

func validateArchitecture(a *domain.Architecture) []error {
	var errs []error

	for i, line := range a.Tree {
		prefix := fmt.Sprintf("architecture.tree[%d]", i)
		if line.Depth < 0 {
			errs = append(errs, fmt.Errorf("%s.depth must not be negative", prefix))
		}
		if blank(line.Label) {
			errs = append(errs, fmt.Errorf("%s.label is required", prefix))
		}
	}
	for i, s := range a.Services {
		if blank(s.Name) {
			errs = append(errs, fmt.Errorf("architecture.services[%d].name is required", i))
		}
	}

	return errs
}

func validateTimeline(weeks []domain.TimelineWeek) []error {
	var errs []error
	seen := make(map[int]bool)

	for i, w := range weeks {
		prefix := fmt.Sprintf("timeline[%d]", i)

		if w.Week <= 0 {
			errs = append(errs, fmt.Errorf("%s.week must be positive", prefix))
		} else if seen[w.Week] {
			errs = append(errs, fmt.Errorf("%s.week: duplicate week %d", prefix, w.Week))
		} else {
			seen[w.Week] = true
		}

		if blank(w.Title) {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		for j, task := range w.Tasks {
			if blank(task) {
				errs = append(errs, fmt.Errorf("%s.tasks[%d] must not be empty", prefix, j))
			}
		}
		if w.Progress < 0 || w.Progress > 100 {
			errs = append(errs, fmt.Errorf("%s.progress: %d out of range [0,100]", prefix, w.Progress))
		}
	}

	return errs
}

func validateTechnologies(t *domain.TechStack) []error {
	var errs []error

	for i, tech := range t.Items {
		prefix := fmt.Sprintf("technologies.items[%d]", i)
		if blank(tech.Name) {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if blank(tech.Category) {
			errs = append(errs, fmt.Errorf("%s.category is required", prefix))
		}
	}
	for i, g := range t.Packages {
		prefix := fmt.Sprintf("technologies.packages[%d]", i)
		if blank(g.Heading) {
			errs = append(errs, fmt.Errorf("%s.heading is required", prefix))
		}
		for j, item := range g.Items {
			if blank(item) {
				errs = append(errs, fmt.Errorf("%s.items[%d] must not be empty", prefix, j))
			}
		}
	}
	for i, r := range t.Results {
		if blank(r) {
			errs = append(errs, fmt.Errorf("technologies.results[%d] must not be empty", i))
		}
	}

	return errs
}
