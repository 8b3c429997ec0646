package document

type iconGlyphs struct {
	emoji  string // HTML
	symbol string // terminal, single cell
}

var icons = map[string]iconGlyphs{
	"smartphone":     {"📱", "▯"},
	"users":          {"👥", "☺"},
	"check-square":   {"☑️", "☑"},
	"shield":         {"🛡️", "⛨"},
	"calendar":       {"📅", "▦"},
	"bar-chart":      {"📊", "▤"},
	"message-square": {"💬", "✉"},
	"paperclip":      {"📎", "∥"},
	"bell":           {"🔔", "♪"},
	"target":         {"🎯", "◎"},
	"clock":          {"⏱️", "◷"},
	"code":           {"💻", "⌘"},
	"database":       {"🗄️", "≣"},
	"layers":         {"🗂️", "≡"},
	"git-branch":     {"🔀", "⎇"},
	"trophy":         {"🏆", "★"},
	"book-open":      {"📖", "❏"},
}

// Emoji returns the HTML glyph for an icon name, or "" if unknown.
func Emoji(name string) string {
	return icons[name].emoji
}

// Symbol returns a single-cell terminal glyph for an icon name.
// Unknown or empty names map to a bullet.
func Symbol(name string) string {
	if g, ok := icons[name]; ok {
		return g.symbol
	}
	return "•"
}
