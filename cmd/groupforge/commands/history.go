package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groupforge/groupforge/pkg/resultstore"
)

func newHistoryCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded computations",
		Long: `List computations recorded in the history database, newest first.

Requires the --store flag pointing at a database previously written by
the element or subgroup commands.`,
		Example: `  # The ten most recent computations
  groupforge history --store history.db

  # Page through older entries
  groupforge history --store history.db --limit 20 --offset 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if storePath == "" {
				return fmt.Errorf("a history database is required (--store)")
			}

			store, err := resultstore.NewSQLiteStore(storePath)
			if err != nil {
				return fmt.Errorf("failed to open history store: %w", err)
			}
			defer store.Close()

			if err := store.Init(ctx); err != nil {
				return fmt.Errorf("failed to initialize history store: %w", err)
			}

			comps, err := store.List(ctx, limit, offset)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(comps)
			}

			if len(comps) == 0 {
				fmt.Println("No computations recorded.")
				return nil
			}
			for _, c := range comps {
				line := fmt.Sprintf("%s  %-8s %-10s p=%d n=%d  %s (order %d)  %s",
					c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					c.Kind, c.Status, c.Prime, c.Exponent, c.GroupName, c.GroupOrder, c.Duration)
				if c.Status == resultstore.StatusFailed && c.Error != nil {
					line += "  error: " + *c.Error
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of entries to list")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of entries to skip")

	return cmd
}
