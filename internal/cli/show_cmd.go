package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Open the interactive tabbed view",
		Long: `Open the interactive tabbed view of a plan.

Keys: 1-6 jump to a tab, tab/→/l and shift+tab/←/h cycle through tabs,
↑/↓/pgup/pgdn scroll, q quits.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, ok, err := tabFlag(cmd)
			if err != nil {
				return err
			}
			if !ok {
				tab = app.Config.Tab()
			}

			_, doc, err := loadDocument(cmd.Context(), cmd, app)
			if err != nil {
				return err
			}
			return app.runProgram(cmd, newShowModel(doc, tab))
		},
	}
	cmd.Flags().String("tab", "", "initial tab (default from config)")
	return cmd
}

func (a *App) runProgram(cmd *cobra.Command, m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(cmd, m)
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}
