// Package tabs implements the tab selector: a six-state machine where
// every state is reachable from every other in one transition.
package tabs

import (
	"fmt"

	"github.com/alexanderramin/planview/internal/domain"
)

// Selector holds the active tab. The zero value is on the overview tab.
type Selector struct {
	active domain.Tab
}

// New returns a Selector starting on initial. Invalid values fall back to
// the overview tab.
func New(initial domain.Tab) Selector {
	if !initial.Valid() {
		initial = domain.TabOverview
	}
	return Selector{active: initial}
}

// Active returns the currently selected tab.
func (s Selector) Active() domain.Tab {
	if s.active == "" {
		return domain.TabOverview
	}
	return s.active
}

// Visible reports whether t is the single visible tab.
func (s Selector) Visible(t domain.Tab) bool {
	return s.Active() == t
}

// Select makes t the active tab. Unknown tabs leave the state unchanged.
func (s *Selector) Select(t domain.Tab) error {
	if !t.Valid() {
		return fmt.Errorf("selecting tab: unknown tab %q", t)
	}
	s.active = t
	return nil
}

// SelectIndex selects by 1-based position, matching the number keys.
func (s *Selector) SelectIndex(n int) error {
	if n < 1 || n > len(domain.AllTabs) {
		return fmt.Errorf("selecting tab: index %d out of range [1,%d]", n, len(domain.AllTabs))
	}
	s.active = domain.AllTabs[n-1]
	return nil
}

// Next moves to the following tab, wrapping after the last.
func (s *Selector) Next() domain.Tab {
	return s.step(1)
}

// Prev moves to the preceding tab, wrapping before the first.
func (s *Selector) Prev() domain.Tab {
	return s.step(-1)
}

func (s *Selector) step(delta int) domain.Tab {
	n := len(domain.AllTabs)
	i := (s.Active().Index() + delta + n) % n
	s.active = domain.AllTabs[i]
	return s.active
}
