package importer

import (
	"cmp"
	"slices"
	"strings"

	"github.com/alexanderramin/planview/internal/domain"
)

// NormalizeShortID trims and upper-cases a short ID as written in a file.
func NormalizeShortID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Convert transforms a validated ImportSchema into a plan ready for persistence.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
// The timeline is sorted by week number; the schema is left untouched.
func Convert(schema *ImportSchema) *domain.Plan {
	plan := schema.Plan
	plan.Timeline = slices.Clone(schema.Timeline)
	slices.SortStableFunc(plan.Timeline, func(a, b domain.TimelineWeek) int {
		return cmp.Compare(a.Week, b.Week)
	})
	return &plan
}
