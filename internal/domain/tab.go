package domain

import (
	"fmt"
	"strings"
)

// Tab identifies one of the six sections of a plan document.
type Tab string

const (
	TabOverview     Tab = "overview"
	TabObjectives   Tab = "objectives"
	TabFeatures     Tab = "features"
	TabArchitecture Tab = "architecture"
	TabTimeline     Tab = "timeline"
	TabTechnologies Tab = "technologies"
)

// AllTabs lists every tab in display order.
var AllTabs = []Tab{
	TabOverview,
	TabObjectives,
	TabFeatures,
	TabArchitecture,
	TabTimeline,
	TabTechnologies,
}

var tabLabels = map[Tab]string{
	TabOverview:     "Vue d'ensemble",
	TabObjectives:   "Objectifs",
	TabFeatures:     "Fonctionnalités",
	TabArchitecture: "Architecture",
	TabTimeline:     "Planning",
	TabTechnologies: "Technologies",
}

// Label returns the human-readable tab caption.
func (t Tab) Label() string {
	if l, ok := tabLabels[t]; ok {
		return l
	}
	return string(t)
}

// Index returns the zero-based position of t in AllTabs, or -1.
func (t Tab) Index() int {
	for i, tab := range AllTabs {
		if tab == t {
			return i
		}
	}
	return -1
}

func (t Tab) Valid() bool {
	return t.Index() >= 0
}

// ParseTab resolves a tab identifier case-insensitively.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown tab %q (expected one of %s)", s, strings.Join(TabNames(), ", "))
	}
	return t, nil
}

// TabNames returns the identifiers of AllTabs as strings.
func TabNames() []string {
	names := make([]string, len(AllTabs))
	for i, t := range AllTabs {
		names[i] = string(t)
	}
	return names
}
