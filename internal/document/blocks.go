package document

import "github.com/alexanderramin/planview/internal/domain"

// Block is one renderer-neutral layout element of a section.
// The set of block types is closed; renderers switch on the concrete type.
type Block interface {
	block()
}

// BadgeVariant selects the visual weight of a badge.
type BadgeVariant string

const (
	BadgeDefault   BadgeVariant = "default"
	BadgeSecondary BadgeVariant = "secondary"
	BadgeOutline   BadgeVariant = "outline"
)

type Badge struct {
	Text    string
	Variant BadgeVariant
}

// StatCards is a row of headline figures.
type StatCards struct {
	Cards []domain.StatCard
}

// Card is a titled container with an optional icon and description.
type Card struct {
	Title       string
	Description string
	Icon        string
	Color       string
	Body        []Block
}

// CardGrid lays cards out side by side where the surface allows it.
type CardGrid struct {
	Cards []Card
}

type Paragraph struct {
	Text     string
	Emphasis bool
}

type IconItem struct {
	Icon   string
	Color  string
	Label  string
	Detail string
}

// IconList is a set of icon + label (+ optional detail) entries.
type IconList struct {
	Items []IconItem
}

type NumberedItem struct {
	Number int
	Text   string
}

// NumberedList renders items with stable 1-based numbers.
type NumberedList struct {
	Items []NumberedItem
}

type BadgeRow struct {
	Badges []Badge
}

// Subsection is a small heading followed by its own blocks.
type Subsection struct {
	Heading string
	Body    []Block
}

// Tree is a monospace directory listing.
type Tree struct {
	Lines []domain.TreeLine
}

// WeekCard is one timeline row: number, title, progress, task badges.
type WeekCard struct {
	Number   int
	Title    string
	Subtitle string
	Progress int
	Badge    Badge
	Tasks    []Badge
}

// Checklist is a list of checked items.
type Checklist struct {
	Items []string
}

type Bullets struct {
	Items []string
}

func (StatCards) block()    {}
func (Card) block()         {}
func (CardGrid) block()     {}
func (Paragraph) block()    {}
func (IconList) block()     {}
func (NumberedList) block() {}
func (BadgeRow) block()     {}
func (Subsection) block()   {}
func (Tree) block()         {}
func (WeekCard) block()     {}
func (Checklist) block()    {}
func (Bullets) block()      {}
