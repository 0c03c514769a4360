package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate group definition files",
		Long: `Validate one or more group definition files.

Each file is parsed and its multiplication table checked against the
group axioms: a two-sided identity, an inverse for every element, and
associativity of the full table.`,
		Example: `  # Validate a single group file
  groupforge validate d4.yaml

  # Validate several at once
  groupforge validate groups/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _ := newTelemetry()

			failed := 0
			for _, path := range args {
				g, err := loadGroup(path)
				if err != nil {
					failed++
					logger.Error().Err(err).Str("file", path).Msg("Validation failed")
					fmt.Printf("FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Printf("OK   %s: %s (order %d)\n", path, g.Name(), g.Order())
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d group files failed validation", failed, len(args))
			}
			return nil
		},
	}

	return cmd
}
