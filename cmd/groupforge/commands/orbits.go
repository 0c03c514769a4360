package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/groupforge/groupforge/pkg/action"
	"github.com/groupforge/groupforge/pkg/group"
)

func newOrbitsCommand() *cobra.Command {
	var groupPath string

	cmd := &cobra.Command{
		Use:   "orbits",
		Short: "Partition a group into conjugacy classes",
		Long: `Partition the elements of a group into conjugacy classes.

The classes are the orbits of the group acting on its own element set
by conjugation. Each class is printed with its size; the class sizes
always sum to the group order.`,
		Example: `  # Conjugacy classes of the symmetric group on three letters
  groupforge orbits --group s3.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger, _ := newTelemetry()

			g, err := loadGroup(groupPath)
			if err != nil {
				return err
			}

			logger.Info().
				Str("group", g.Name()).
				Int("order", g.Order()).
				Msg("Computing conjugacy classes")

			conj := action.New(g.Elements(), g.Identity(), g.Order(), func(x group.Element, a int) int {
				return int(g.Conjugate(x, group.Element(a)))
			})
			orbits, err := conj.Orbits(ctx)
			if err != nil {
				return err
			}

			classes := make([][]string, 0, len(orbits))
			for _, orbit := range orbits {
				labels := make([]string, 0, len(orbit))
				for _, a := range orbit {
					labels = append(labels, g.Label(group.Element(a)))
				}
				classes = append(classes, labels)
			}

			if jsonOutput {
				return printJSON(map[string]interface{}{
					"group":   g.Name(),
					"order":   g.Order(),
					"classes": classes,
				})
			}
			fmt.Printf("%s has %d conjugacy classes:\n", g.Name(), len(classes))
			for _, labels := range classes {
				fmt.Printf("  size %d: {%s}\n", len(labels), strings.Join(labels, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&groupPath, "group", "g", "", "group definition file (YAML)")
	cmd.MarkFlagRequired("group")

	return cmd
}
