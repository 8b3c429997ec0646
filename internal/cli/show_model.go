package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planview/internal/cli/formatter"
	"github.com/alexanderramin/planview/internal/document"
	"github.com/alexanderramin/planview/internal/domain"
	"github.com/alexanderramin/planview/internal/tabs"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type showKeyMap struct {
	Jump   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Scroll key.Binding
	Quit   key.Binding
}

func defaultShowKeyMap() showKeyMap {
	return showKeyMap{
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "tab"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "prev"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑↓ pgup/pgdn", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the status bar.
func (k showKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Next, k.Prev, k.Scroll, k.Quit}
}

// showModel is the bubbletea model behind `planview show`. It renders the
// document header, the tab bar, and the active section only.
type showModel struct {
	doc      *document.Document
	selector tabs.Selector
	keys     showKeyMap

	width  int
	height int

	// vp scrolls the active section once the terminal size is known.
	vp    viewport.Model
	ready bool

	quitting bool
}

func newShowModel(doc *document.Document, initial domain.Tab) showModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = sectionViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return showModel{
		doc:      doc,
		selector: tabs.New(initial),
		keys:     defaultShowKeyMap(),
		vp:       vp,
	}
}

// Active returns the selected tab.
func (m showModel) Active() domain.Tab {
	return m.selector.Active()
}

func (m showModel) Init() tea.Cmd {
	return nil
}

func (m showModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = m.contentHeight()
		m.vp.SetContent(m.sectionContent())
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.ready {
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}

	case tea.QuitMsg:
		m.quitting = true
	}
	return m, nil
}

func (m showModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		n := int(msg.String()[0] - '0')
		if err := m.selector.SelectIndex(n); err == nil {
			m.resetSection()
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.selector.Next()
		m.resetSection()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.selector.Prev()
		m.resetSection()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resetSection loads the active section and scrolls back to the top.
func (m *showModel) resetSection() {
	if !m.ready {
		return
	}
	m.vp.SetContent(m.sectionContent())
	m.vp.GotoTop()
}

func (m showModel) sectionContent() string {
	return formatter.FormatSection(m.doc.Section(m.selector.Active()), m.width)
}

func (m showModel) contentHeight() int {
	used := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderStatusBar())
	return max(m.height-used, 1)
}

func (m showModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if m.ready {
		sections = append(sections, m.vp.View())
	} else {
		sections = append(sections, strings.TrimRight(m.sectionContent(), "\n"))
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen renderer leaves no stale lines.
	if m.height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.height {
			result += strings.Repeat("\n", m.height-lines)
		}
	}
	return result
}

func (m showModel) renderHeader() string {
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return formatter.FormatTitle(m.doc) + "\n" + sep + "\n" + formatter.FormatTabBar(m.selector.Active(), m.width) + "\n"
}

func (m showModel) renderStatusBar() string {
	var hints []string
	if m.ready && m.vp.TotalLineCount() > m.vp.Height {
		hints = append(hints, scrollIndicator(m.vp))
	}
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// sectionViewportKeyMap leaves letter keys free for tab navigation and quit.
func sectionViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// scrollIndicator shows the viewport position: [TOP], [END] or a percentage.
func scrollIndicator(vp viewport.Model) string {
	switch {
	case vp.AtTop():
		return formatter.Dim("[TOP]")
	case vp.AtBottom():
		return formatter.Dim("[END]")
	default:
		return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
	}
}
