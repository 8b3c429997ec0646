// Package cli implements the planview command line: the tabbed terminal
// view, the section printer, HTML and JSON export, the HTTP server, and the
// plan catalog commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/planview/internal/config"
	"github.com/alexanderramin/planview/internal/document"
	"github.com/alexanderramin/planview/internal/domain"
	"github.com/alexanderramin/planview/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Plans  service.PlanService
	Config *config.Config
	Logger *slog.Logger

	// Load resolves configuration and wires the fields above once flags are
	// parsed. tui is true for commands that draw a full-screen view, which
	// must not log to the terminal. Nil when the fields are set up front.
	Load func(cfgFile string, tui bool) error

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// RunProgram runs a bubbletea model to completion. Nil starts a
	// full-screen tea.Program on the command's streams.
	RunProgram func(cmd *cobra.Command, m tea.Model) error

	// PromptTab asks which tab to print. Nil uses a huh select.
	PromptTab func(initial domain.Tab) (domain.Tab, error)
}

const tuiAnnotation = "planview/tui"

// NewRootCmd creates the top-level "planview" command and registers all
// subcommands against the provided App. Without a subcommand it runs show.
func NewRootCmd(app *App) *cobra.Command {
	var cfgFile string

	show := newShowCmd(app)
	root := &cobra.Command{
		Use:   "planview",
		Short: "Browse a tabbed project plan in the terminal, as HTML, or over HTTP",
		Long: `planview displays a project plan document in six tabs: overview,
objectives, features, architecture, timeline and technologies.

Run without a subcommand to open the interactive view of the default plan.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{tuiAnnotation: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Load != nil {
				if err := app.Load(cfgFile, cmd.Annotations[tuiAnnotation] == "true"); err != nil {
					return err
				}
			}
			if app.Config == nil {
				app.Config = config.Default()
			}
			if app.Logger == nil {
				app.Logger = slog.New(slog.DiscardHandler)
			}
			return nil
		},
		RunE: show.RunE,
	}
	root.Flags().AddFlagSet(show.Flags())

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.planview/config.yaml)")
	root.PersistentFlags().String("plan", "", "plan to display: builtin, a short ID or a plan UUID (default from config)")

	root.AddCommand(
		show,
		newRenderCmd(app),
		newTabsCmd(app),
		newExportCmd(app),
		newServeCmd(app),
		newPlanCmd(app),
	)
	return root
}

// planRef returns --plan when given, else the configured plan.
func planRef(cmd *cobra.Command, app *App) string {
	if f := cmd.Flags().Lookup("plan"); f != nil && f.Changed {
		return f.Value.String()
	}
	return app.Config.Plan
}

// tabFlag parses --tab when given. ok is false when the flag was not set.
func tabFlag(cmd *cobra.Command) (tab domain.Tab, ok bool, err error) {
	f := cmd.Flags().Lookup("tab")
	if f == nil || !f.Changed {
		return "", false, nil
	}
	tab, err = domain.ParseTab(f.Value.String())
	if err != nil {
		return "", true, err
	}
	return tab, true, nil
}

// loadDocument resolves the selected plan and composes its document.
func loadDocument(ctx context.Context, cmd *cobra.Command, app *App) (*domain.StoredPlan, *document.Document, error) {
	plan, err := app.Plans.Resolve(ctx, planRef(cmd, app))
	if err != nil {
		return nil, nil, fmt.Errorf("loading plan: %w", err)
	}
	return plan, document.Compose(&plan.Plan), nil
}
