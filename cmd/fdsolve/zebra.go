package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/finitedomain/internal/puzzle"
	"github.com/gitrdm/finitedomain/internal/tracer"
)

var zebraCmd = &cobra.Command{
	Use:   "zebra",
	Short: "solve the Einstein zebra riddle and report who owns the zebra",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		zm := puzzle.BuildZebraModel()
		zm.Model.SetObserver(tracer.New(logger))

		solver := zm.Model.Solve()
		solution, ok := solver.Next()
		if !ok {
			return fmt.Errorf("zebra: no solution found")
		}

		for house := 1; house <= 5; house++ {
			row := make(map[puzzle.ZebraCategory]string, len(zm.Vars))
			for cat, ids := range zm.Vars {
				for i, id := range ids {
					v, ok := solution.Var(id).Value()
					if ok && v == house {
						row[cat] = puzzle.ZebraValues[cat][i]
					}
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "house %d: %s, %s, %s, %s, %s\n",
				house, row[puzzle.Nationality], row[puzzle.Color], row[puzzle.Pet],
				row[puzzle.Drink], row[puzzle.Smoke])
		}
		return nil
	},
}
