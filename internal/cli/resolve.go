package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anpham6/squared-sub012/pkg/document"
	"github.com/anpham6/squared-sub012/pkg/pipeline"
)

// resolveFlags holds the command-line overrides for a resolve run.
type resolveFlags struct {
	output    string
	noCache   bool
	refresh   bool
	save      bool
	tolerance float64
	exact     bool
	rtl       bool
}

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var flags resolveFlags

	cmd := &cobra.Command{
		Use:   "resolve [document]",
		Short: "Resolve anchors and gravity for a geometry document",
		Long: `Resolve anchors and gravity for a geometry document.

The resolve command reads a measured element tree (JSON or TOML) and writes
a result file with anchor directives for constraint containers and gravity
directives for gravity containers. The result can be drawn with 'graph' or
browsed with 'inspect'.

Results are cached by document content and resolver options. Use --save to
keep the run in the configured store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := resolveOptions(cfg)
			if cmd.Flags().Changed("tolerance") {
				opts.Tolerance = flags.tolerance
			}
			if cmd.Flags().Changed("exact") {
				opts.Exact = flags.exact
			}
			if cmd.Flags().Changed("rtl") {
				opts.SupportRTL = flags.rtl
			}
			opts.Refresh = flags.refresh
			return c.runResolve(cmd.Context(), args[0], opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: <input>.result.json)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute even when a cached result exists")
	cmd.Flags().BoolVar(&flags.save, "save", false, "persist the run in the configured store")

	cmd.Flags().Float64Var(&flags.tolerance, "tolerance", pipeline.DefaultTolerance, "edge matching tolerance in pixels")
	cmd.Flags().BoolVar(&flags.exact, "exact", false, "require exact edge matches")
	cmd.Flags().BoolVar(&flags.rtl, "rtl", false, "emit start/end gravity instead of left/right")

	return cmd
}

// runResolve loads the document, resolves it, and writes the result.
func (c *CLI) runResolve(ctx context.Context, input string, opts pipeline.Options, flags resolveFlags) error {
	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	doc, _, err := runner.Load(ctx, input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Resolving %s...", displayName(doc, input)))
	spinner.Start()

	res, info, err := runner.Execute(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Resolve failed")
		return fmt.Errorf("resolve: %w", err)
	}
	if spinner.Cancelled() {
		return ctx.Err()
	}
	spinner.Stop()
	prog.done("Resolved " + displayName(doc, input))

	outputPath := flags.output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".result.json"
	}
	if err := document.WriteResultFile(res, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Resolve complete")
	printFile(outputPath)
	printStats(res.Stats, info.Hit)
	if res.Directives() == 0 {
		printWarning("No constraint or gravity containers in %s", input)
	}

	if flags.save {
		if err := c.saveRun(ctx, res); err != nil {
			return err
		}
	}

	printNewline()
	printNextStep("Graph", appName+" graph "+outputPath)
	return nil
}

// saveRun persists res in the configured store.
func (c *CLI) saveRun(ctx context.Context, res *document.Result) error {
	st, err := c.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := st.Save(ctx, res); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	printDetail("Saved run %s", res.ID)
	return nil
}

func displayName(doc *document.Document, path string) string {
	if doc.Name != "" {
		return doc.Name
	}
	return filepath.Base(path)
}
