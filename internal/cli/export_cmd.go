package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/planview/internal/htmldoc"
	"github.com/alexanderramin/planview/internal/importer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const formatHTML = "html"

// exportFormat is the --format flag value.
type exportFormat string

var _ pflag.Value = (*exportFormat)(nil)

func (f *exportFormat) String() string { return string(*f) }

func (f *exportFormat) Set(s string) error {
	switch v := strings.ToLower(s); v {
	case formatHTML, string(importer.FormatJSON), string(importer.FormatYAML):
		*f = exportFormat(v)
		return nil
	}
	return errors.New("must be one of html, json, yaml")
}

func (f *exportFormat) Type() string { return "format" }

func newExportCmd(app *App) *cobra.Command {
	format := exportFormat(formatHTML)
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a plan as an HTML page or a plan document",
		Long: `Export a plan.

html writes one self-contained page with all six tabs; --tab picks the tab
shown on load. json and yaml write the plan document, which re-imports
with "planview plan import".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, doc, err := loadDocument(cmd.Context(), cmd, app)
			if err != nil {
				return err
			}
			tab, ok, err := tabFlag(cmd)
			if err != nil {
				return err
			}
			if !ok {
				tab = app.Config.Tab()
			}

			var w io.Writer = cmd.OutOrStdout()
			var f *os.File
			if outPath != "" {
				f, err = os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				w = f
			}

			switch format {
			case formatHTML:
				err = htmldoc.Render(w, doc, htmldoc.Options{Active: tab})
			default:
				err = importer.Encode(w, importer.FromPlan(plan.ShortID, &plan.Plan), importer.Format(format))
			}

			if f != nil {
				if cerr := f.Close(); err == nil && cerr != nil {
					err = fmt.Errorf("closing output file: %w", cerr)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", plan.DisplayID(), outPath)
				return nil
			}
			return err
		},
	}
	cmd.Flags().VarP(&format, "format", "f", "output format: html, json or yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to FILE instead of stdout")
	cmd.Flags().String("tab", "", "tab shown when the HTML page loads (default from config)")
	return cmd
}
