package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trek/internal/puzzle/garden"
)

func newGardenCmd(a *app) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "garden <input>",
		Short: "Count plots reachable in exactly --steps steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.Garden.Steps
			}
			input, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			m, err := garden.Parse(input)
			if err != nil {
				return err
			}
			n, err := m.Count(steps, garden.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.Info("garden counted", slog.Int("steps", steps), slog.Int("plots", n))
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 64, "exact number of steps to walk")

	return cmd
}
