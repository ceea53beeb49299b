package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/anpham6/squared-sub012/pkg/document"
)

// inspectCommand creates the inspect command for browsing a result.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		runID string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [result.json]",
		Short: "Browse the directives of a resolved result",
		Long: `Browse the directives of a resolved result.

The inspect command opens an interactive table of every anchor and gravity
directive in a result file, or in a saved run with --run. Use tab to switch
between all directives, anchors only, and gravity only.

With --plain, or when stdout is not a terminal, the table is printed once.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.loadResult(cmd.Context(), args, runID)
			if err != nil {
				return err
			}
			if plain || !isTerminal(os.Stdout) {
				printResultTable(res)
				return nil
			}
			return runBrowser(cmd.Context(), res)
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "inspect a saved run instead of a file")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the table without the interactive browser")

	return cmd
}

// loadResult reads a result from a file argument or from the run store.
func (c *CLI) loadResult(ctx context.Context, args []string, runID string) (*document.Result, error) {
	switch {
	case runID != "" && len(args) > 0:
		return nil, fmt.Errorf("pass a result file or --run, not both")
	case runID != "":
		st, err := c.openStore(ctx)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		return st.Get(ctx, runID)
	case len(args) == 1:
		res, err := document.ReadResultFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("load result %s: %w", args[0], err)
		}
		return res, nil
	}
	return nil, fmt.Errorf("a result file or --run is required")
}

// runBrowser runs the interactive directive browser until the user quits.
func runBrowser(ctx context.Context, res *document.Result) error {
	p := tea.NewProgram(NewDirectiveListModel(res), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	return nil
}

// printResultTable prints every directive of res with its summary line.
func printResultTable(res *document.Result) {
	rows := directiveRows(res)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.cells("")
	}
	fmt.Println(StyleTitle.Render(NewDirectiveListModel(res).Title))
	printKeyValue("Run", res.ID)
	printKeyValue("Hash", shortHash(res.DocumentHash))
	printKeyValue("Tolerance", formatNumber(res.Options.Tolerance))
	if res.Options.SupportRTL {
		printKeyValue("Direction", "start/end")
	}
	fmt.Println(directiveTable(cells, nil).Render())
	printCounts(res.Stats)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
