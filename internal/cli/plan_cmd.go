package cli

import (
	"fmt"

	"github.com/alexanderramin/planview/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the plan catalog",
	}

	cmd.AddCommand(
		newPlanImportCmd(app),
		newPlanListCmd(app),
		newPlanRemoveCmd(app),
	)
	return cmd
}

func newPlanImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan document from a .json, .yaml or .yml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s %s (%d weeks)\n",
				formatter.StyleGreen.Render(plan.ShortID),
				formatter.Bold(plan.Plan.Title),
				len(plan.Plan.Timeline),
			)
			return nil
		},
	}
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the built-in plan and every stored plan",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(plans))
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove REF",
		Aliases: []string{"rm"},
		Short:   "Delete a stored plan by short ID or UUID",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed plan %s\n", args[0])
			return nil
		},
	}
}
