package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planview/internal/cli/formatter"
	"github.com/alexanderramin/planview/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var width int
	var all bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one section of a plan and exit",
		Long: `Print one section of a plan through the terminal renderer.

Without --tab, an interactive terminal is asked which tab to print;
otherwise the configured default tab is printed. --all prints every
section in tab order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, doc, err := loadDocument(cmd.Context(), cmd, app)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if all {
				fmt.Fprint(out, formatter.FormatDocument(doc, width))
				return nil
			}

			tab, err := app.renderTab(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatTitle(doc))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatTabBar(tab, width))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatSection(doc.Section(tab), width))
			return nil
		},
	}
	cmd.Flags().String("tab", "", "tab to print: "+tabChoices())
	cmd.Flags().IntVar(&width, "width", 0, "wrap width in columns (0 disables wrapping)")
	cmd.Flags().BoolVar(&all, "all", false, "print every section")
	return cmd
}

// renderTab picks the tab to print: --tab, then a prompt on an interactive
// terminal, then the configured default.
func (a *App) renderTab(cmd *cobra.Command) (domain.Tab, error) {
	tab, ok, err := tabFlag(cmd)
	if err != nil || ok {
		return tab, err
	}
	def := a.Config.Tab()
	if a.IsInteractive == nil || !a.IsInteractive() {
		return def, nil
	}
	if a.PromptTab != nil {
		return a.PromptTab(def)
	}
	return promptTab(def)
}

func promptTab(initial domain.Tab) (domain.Tab, error) {
	options := make([]huh.Option[domain.Tab], len(domain.AllTabs))
	for i, tab := range domain.AllTabs {
		options[i] = huh.NewOption(fmt.Sprintf("%d  %s", i+1, tab.Label()), tab)
	}

	selected := initial
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Tab]().
				Title("Which tab?").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(planviewHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selecting tab: %w", err)
	}
	return selected, nil
}

// planviewHuhTheme matches the prompt colors to the terminal renderer.
func planviewHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func tabChoices() string {
	return strings.Join(domain.TabNames(), "|")
}

func newTabsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the tab identifiers and their labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTabList(app.Config.Tab()))
			return nil
		},
	}
}
