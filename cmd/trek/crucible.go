package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trek/internal/puzzle/crucible"
)

func newCrucibleCmd(a *app) *cobra.Command {
	var (
		minRun, maxRun int
		showPath       bool
	)
	cmd := &cobra.Command{
		Use:   "crucible <input>",
		Short: "Least heat-loss route across a digit map",
		Long: `Moves a crucible from the top-left to the bottom-right block of a digit map,
at least --min-run and at most --max-run blocks in a straight line, and prints
the total heat loss. Use "-" to read the map from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min-run") {
				minRun = a.cfg.Crucible.MinRun
			}
			if !cmd.Flags().Changed("max-run") {
				maxRun = a.cfg.Crucible.MaxRun
			}
			input, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			city, err := crucible.Parse(input)
			if err != nil {
				return err
			}
			res, err := crucible.Solve(city, minRun, maxRun, crucible.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.Info("crucible solved",
				slog.Int("heat_loss", res.HeatLoss),
				slog.Int("expanded", res.Stats.Expanded))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.HeatLoss)
			if showPath {
				fmt.Fprint(out, city.Render(func(v int) rune { return rune('0' + v) }, res.Route))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&minRun, "min-run", 1, "blocks to move before turning or stopping")
	cmd.Flags().IntVar(&maxRun, "max-run", 3, "most blocks to move in a straight line")
	cmd.Flags().BoolVar(&showPath, "show-path", false, "draw the map with the route highlighted")

	return cmd
}
