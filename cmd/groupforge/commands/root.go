package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose       bool
	jsonOutput    bool
	storePath     string
	traceExporter string
	traceEndpoint string
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "groupforge",
		Short: "GroupForge - Constructive finite group theory toolkit",
		Long: `GroupForge computes structural witnesses in finite groups given by
their multiplication tables.

Features:
  - Element-of-order-p construction (Cauchy witnesses)
  - Subgroup towers of prime-power order (Sylow-style growth)
  - Orbit and conjugacy class decomposition
  - Group file validation against the group axioms
  - Persistent computation history in SQLite`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "path to a SQLite history database (optional)")
	rootCmd.PersistentFlags().StringVar(&traceExporter, "trace", "none", "trace exporter (none, stdout, otlp)")
	rootCmd.PersistentFlags().StringVar(&traceEndpoint, "trace-endpoint", "localhost:4317", "OTLP collector endpoint")

	// Add subcommands
	rootCmd.AddCommand(newElementCommand())
	rootCmd.AddCommand(newSubgroupCommand())
	rootCmd.AddCommand(newOrbitsCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newHistoryCommand())

	return rootCmd
}
