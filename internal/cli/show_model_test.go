package cli

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/alexanderramin/planview/internal/catalog"
	"github.com/alexanderramin/planview/internal/document"
	"github.com/alexanderramin/planview/internal/domain"
	"github.com/alexanderramin/planview/internal/teatest"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// sectionMarkers holds a heading that appears only in the given tab's section.
var sectionMarkers = map[domain.Tab]string{
	domain.TabOverview:     "CONTEXTE DU PROJET",
	domain.TabObjectives:   "OBJECTIF GÉNÉRAL",
	domain.TabFeatures:     "FONCTIONNALITÉS DÉTAILLÉES",
	domain.TabArchitecture: "CLEAN ARCHITECTURE",
	domain.TabTimeline:     "PLANNING DE RÉALISATION",
	domain.TabTechnologies: "RÉSULTAT ATTENDU",
}

// assertOnlySection checks that out shows tab's section and no other.
func assertOnlySection(t *testing.T, out string, tab domain.Tab) {
	t.Helper()
	for other, marker := range sectionMarkers {
		if other == tab {
			assert.Contains(t, out, marker, "section %s should be visible", other)
		} else {
			assert.NotContains(t, out, marker, "section %s should be hidden", other)
		}
	}
}

func newShowDriver(t *testing.T, initial domain.Tab, opts ...teatest.Option) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newShowModel(document.Compose(catalog.Default()), initial), opts...)
	d.DrainInit()
	return d
}

func activeTab(t *testing.T, d *teatest.Driver) domain.Tab {
	t.Helper()
	m, ok := d.Model.(showModel)
	require.True(t, ok, "model should be showModel, got %T", d.Model)
	return m.Active()
}

func TestShowModel_StartsOnOverview(t *testing.T) {
	d := newShowDriver(t, "")

	assert.Equal(t, domain.TabOverview, activeTab(t, d))
	out := stripANSI(d.View())
	assertOnlySection(t, out, domain.TabOverview)
	assert.Contains(t, out, "Application Mobile Collaborative")
	for _, tab := range domain.AllTabs {
		assert.Contains(t, out, tab.Label(), "tab bar lists every label")
	}
}

func TestShowModel_InitialTab(t *testing.T) {
	d := newShowDriver(t, domain.TabTimeline)

	assert.Equal(t, domain.TabTimeline, activeTab(t, d))
	assertOnlySection(t, stripANSI(d.View()), domain.TabTimeline)
}

func TestShowModel_NumberKeysSelectExactlyOneSection(t *testing.T) {
	d := newShowDriver(t, "")

	for i, tab := range domain.AllTabs {
		t.Run(string(tab), func(t *testing.T) {
			d.PressKey(rune('1' + i))

			assert.Equal(t, tab, activeTab(t, d))
			assertOnlySection(t, stripANSI(d.View()), tab)
		})
	}
}

func TestShowModel_OutOfRangeDigitIgnored(t *testing.T) {
	d := newShowDriver(t, domain.TabFeatures)

	d.PressKey('7')
	d.PressKey('0')

	assert.Equal(t, domain.TabFeatures, activeTab(t, d))
	assert.False(t, d.Quitting)
}

func TestShowModel_NextVisitsEveryTabOnceAndWraps(t *testing.T) {
	d := newShowDriver(t, "")

	seen := map[domain.Tab]int{activeTab(t, d): 1}
	for range len(domain.AllTabs) - 1 {
		d.PressTab()
		seen[activeTab(t, d)]++
	}
	for _, tab := range domain.AllTabs {
		assert.Equal(t, 1, seen[tab], "tab %s", tab)
	}
	assert.Equal(t, domain.TabTechnologies, activeTab(t, d))

	d.PressTab()
	assert.Equal(t, domain.TabOverview, activeTab(t, d))
}

func TestShowModel_NavigationKeys(t *testing.T) {
	d := newShowDriver(t, "")

	d.PressShiftTab()
	assert.Equal(t, domain.TabTechnologies, activeTab(t, d))

	d.PressRight()
	assert.Equal(t, domain.TabOverview, activeTab(t, d))

	d.PressKey('l')
	assert.Equal(t, domain.TabObjectives, activeTab(t, d))

	d.PressKey('h')
	d.PressLeft()
	assert.Equal(t, domain.TabTechnologies, activeTab(t, d))
}

func TestShowModel_ReturningToTimelineIsIdentical(t *testing.T) {
	d := newShowDriver(t, "", teatest.WithSize(120, 40))

	d.PressKey('5')
	first := d.View()
	for i := range domain.AllTabs {
		d.PressKey(rune('1' + i))
	}
	d.PressKey('5')

	assert.Equal(t, first, d.View())
}

func TestShowModel_Quit(t *testing.T) {
	t.Run("q", func(t *testing.T) {
		d := newShowDriver(t, "")
		d.PressKey('q')
		assert.True(t, d.Quitting)
		assert.Empty(t, d.View())
	})
	t.Run("ctrl+c", func(t *testing.T) {
		d := newShowDriver(t, "")
		d.PressCtrlC()
		assert.True(t, d.Quitting)
	})
}

func TestShowModel_ViewportFillsTerminal(t *testing.T) {
	const height = 20
	d := newShowDriver(t, domain.TabTimeline, teatest.WithSize(100, height))

	out := d.View()
	assert.Equal(t, height, strings.Count(out, "\n")+1)

	plain := stripANSI(out)
	assert.Contains(t, plain, "PLANNING DE RÉALISATION")
	assert.Contains(t, plain, "[TOP]")
	assert.Contains(t, plain, "1-6: tab")
	assert.Contains(t, plain, "q: quit")
}

func TestShowModel_SwitchingTabsResetsScroll(t *testing.T) {
	d := newShowDriver(t, domain.TabTimeline, teatest.WithSize(100, 20))

	d.PressPgDown()
	d.PressDown()
	m := d.Model.(showModel)
	require.Greater(t, m.vp.YOffset, 0, "timeline should scroll in a short terminal")
	assert.NotContains(t, stripANSI(d.View()), "[TOP]")

	d.PressTab()
	d.PressShiftTab()

	m = d.Model.(showModel)
	assert.Equal(t, domain.TabTimeline, m.Active())
	assert.Equal(t, 0, m.vp.YOffset)
	assert.Contains(t, stripANSI(d.View()), "PLANNING DE RÉALISATION")
}

func TestShowModel_ScrollKeysKeepTab(t *testing.T) {
	d := newShowDriver(t, domain.TabFeatures, teatest.WithSize(100, 20))

	d.PressPgDown()
	d.PressPgUp()
	d.PressUp()
	d.PressDown()

	assert.Equal(t, domain.TabFeatures, activeTab(t, d))
}

func TestShowModel_ResizeRewrapsContent(t *testing.T) {
	d := newShowDriver(t, domain.TabOverview, teatest.WithSize(100, 30))

	d.Resize(60, 12)

	m := d.Model.(showModel)
	assert.Equal(t, 60, m.vp.Width)
	assert.Equal(t, 12, strings.Count(d.View(), "\n")+1)
}

func TestShowModel_TabBarFitsStandardTerminal(t *testing.T) {
	for _, tab := range domain.AllTabs {
		t.Run(string(tab), func(t *testing.T) {
			d := newShowDriver(t, tab)
			d.Resize(80, 30)

			var bar string
			for _, line := range strings.Split(d.View(), "\n") {
				if strings.Contains(stripANSI(line), "│") {
					bar = line
					break
				}
			}
			require.NotEmpty(t, bar, "tab bar line should render")

			// The renderer clips every line to the window width.
			shown := stripANSI(ansi.Truncate(bar, 80, ""))
			assert.Contains(t, shown, tab.Label(), "active tab label should be fully visible")
			for i := range domain.AllTabs {
				assert.Contains(t, shown, " "+strconv.Itoa(i+1)+" ", "key %d should be visible", i+1)
			}
		})
	}
}
