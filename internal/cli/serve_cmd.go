package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/planview/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve plans over HTTP",
		Long: `Serve the default plan at / and /plan.json, and every stored plan at
/plans/{ref}. GET /plans lists the catalog and /health reports OK.

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.Serve.Addr
			}
			tab, ok, err := tabFlag(cmd)
			if err != nil {
				return err
			}
			if !ok {
				tab = app.Config.Tab()
			}

			ref := planRef(cmd, app)
			// Fail before listening when the default plan does not resolve.
			plan, err := app.Plans.Resolve(cmd.Context(), ref)
			if err != nil {
				return fmt.Errorf("loading plan: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			router := server.NewRouter(app.Plans, server.Options{DefaultPlan: ref, Tab: tab}, app.Logger)
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on %s (ctrl+c to stop)\n", plan.DisplayID(), addr)
			return server.ListenAndServe(ctx, addr, router, app.Logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().String("tab", "", "tab shown when a page loads (default from config)")
	return cmd
}
