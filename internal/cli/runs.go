package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/anpham6/squared-sub012/pkg/store"
)

// runsCommand creates the command for managing saved runs.
func (c *CLI) runsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List and delete runs saved with 'resolve --save'",
	}

	cmd.AddCommand(c.runsListCommand())
	cmd.AddCommand(c.runsDeleteCommand())

	return cmd
}

// runsListCommand creates the "runs list" subcommand.
func (c *CLI) runsListCommand() *cobra.Command {
	var opts store.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			sums, err := st.List(ctx, opts)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(sums) == 0 {
				printInfo("No saved runs")
				return nil
			}
			fmt.Println(runsTable(sums).Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DocumentHash, "document", "", "only runs of the document with this content hash")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", store.DefaultListLimit, "maximum number of runs")

	return cmd
}

// runsDeleteCommand creates the "runs delete" subcommand.
func (c *CLI) runsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [run-id]...",
		Short: "Delete saved runs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			for _, id := range args {
				if err := st.Delete(ctx, id); err != nil {
					return fmt.Errorf("delete run %s: %w", id, err)
				}
			}
			printSuccess("Deleted %d runs", len(args))
			return nil
		},
	}
}

func runsTable(sums []store.Summary) *table.Table {
	rows := make([][]string, len(sums))
	for i, s := range sums {
		rows[i] = []string{
			s.ID,
			s.Document,
			shortHash(s.DocumentHash),
			strconv.Itoa(s.Anchors),
			strconv.Itoa(s.Gravity),
			s.CreatedAt.Local().Format(time.DateTime),
		}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Run", "Document", "Hash", "Anchors", "Gravity", "Created").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return listHeaderStyle
			}
			if col == 2 || col == 5 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
