package domain

// Plan is the full set of data tables behind a plan document.
// Every field is display data; nothing here is computed at runtime.
type Plan struct {
	Title        string         `json:"title" yaml:"title"`
	Subtitle     string         `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Icon         string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	Overview     Overview       `json:"overview" yaml:"overview"`
	Objectives   Objectives     `json:"objectives" yaml:"objectives"`
	Features     Features       `json:"features" yaml:"features"`
	Architecture Architecture   `json:"architecture" yaml:"architecture"`
	Timeline     []TimelineWeek `json:"timeline" yaml:"timeline"`
	Technologies TechStack      `json:"technologies" yaml:"technologies"`
}

// StatCard is a headline figure shown at the top of the overview.
type StatCard struct {
	Title   string `json:"title" yaml:"title"`
	Value   string `json:"value" yaml:"value"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Icon    string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Highlight is an icon + label chip.
type Highlight struct {
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

type Overview struct {
	Cards      []StatCard  `json:"cards,omitempty" yaml:"cards,omitempty"`
	Context    string      `json:"context,omitempty" yaml:"context,omitempty"`
	Highlights []Highlight `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// Role is a user type of the planned application.
type Role struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Objectives holds the general goal and the ordered specific objectives.
// An objective's number is its position in Specific, starting at 1.
type Objectives struct {
	General  string   `json:"general,omitempty" yaml:"general,omitempty"`
	Specific []string `json:"specific" yaml:"specific"`
	Roles    []Role   `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// Feature is one planned capability. Icon doubles as its category tag.
type Feature struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}

// FeatureDetail is a heading with either explanatory text or a badge row.
type FeatureDetail struct {
	Heading string   `json:"heading" yaml:"heading"`
	Text    string   `json:"text,omitempty" yaml:"text,omitempty"`
	Badges  []string `json:"badges,omitempty" yaml:"badges,omitempty"`
}

type Features struct {
	Items   []Feature       `json:"items" yaml:"items"`
	Details []FeatureDetail `json:"details,omitempty" yaml:"details,omitempty"`
}

// TreeLine is one line of a directory tree listing.
type TreeLine struct {
	Depth   int    `json:"depth" yaml:"depth"`
	Label   string `json:"label" yaml:"label"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Service is a backend service the planned application integrates with.
type Service struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

type Architecture struct {
	Name          string     `json:"name,omitempty" yaml:"name,omitempty"`
	Description   string     `json:"description,omitempty" yaml:"description,omitempty"`
	Tree          []TreeLine `json:"tree,omitempty" yaml:"tree,omitempty"`
	ServicesTitle string     `json:"services_title,omitempty" yaml:"services_title,omitempty"`
	Services      []Service  `json:"services,omitempty" yaml:"services,omitempty"`
}

// TimelineWeek is one week of the delivery schedule.
// Progress is a planned completion percentage in [0,100].
type TimelineWeek struct {
	Week     int      `json:"week" yaml:"week"`
	Title    string   `json:"title" yaml:"title"`
	Tasks    []string `json:"tasks" yaml:"tasks"`
	Progress int      `json:"progress" yaml:"progress"`
}

// ClampedProgress returns Progress limited to [0,100].
func (w TimelineWeek) ClampedProgress() int {
	return ClampProgress(w.Progress)
}

// ClampProgress limits a percentage to [0,100].
func ClampProgress(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Technology is one entry of the planned tech stack.
type Technology struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// PackageGroup is a heading with a bullet list of package names.
type PackageGroup struct {
	Heading string   `json:"heading" yaml:"heading"`
	Items   []string `json:"items" yaml:"items"`
}

type TechStack struct {
	Items         []Technology   `json:"items" yaml:"items"`
	PackagesTitle string         `json:"packages_title,omitempty" yaml:"packages_title,omitempty"`
	Packages      []PackageGroup `json:"packages,omitempty" yaml:"packages,omitempty"`
	Results       []string       `json:"results,omitempty" yaml:"results,omitempty"`
}

// WeekCount returns the number of weeks in the timeline.
func (p *Plan) WeekCount() int {
	return len(p.Timeline)
}
