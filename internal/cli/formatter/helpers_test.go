package formatter

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/planview/internal/document"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHeaderUnderlineMatchesVisibleWidth(t *testing.T) {
	got := stripANSI(Header("Objectif général"))
	assert.Equal(t, "OBJECTIF GÉNÉRAL\n────────────────", got)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n\n  b", Indent("a\n\nb", 2))
}

func TestRenderBadge(t *testing.T) {
	assert.Equal(t, "[100%]", stripANSI(RenderBadge(document.Badge{Text: "100%", Variant: document.BadgeDefault})))
	assert.Equal(t, "[40%]", stripANSI(RenderBadge(document.Badge{Text: "40%", Variant: document.BadgeSecondary})))
	assert.Equal(t, "◦ Tests", stripANSI(RenderBadge(document.Badge{Text: "Tests", Variant: document.BadgeOutline})))
}

func TestHintStyleFallsBack(t *testing.T) {
	assert.Equal(t, StyleGreen, HintStyle("green"))
	assert.Equal(t, StyleBlue, HintStyle("indigo"))
	assert.Equal(t, StyleFg, HintStyle("teal"))
}
