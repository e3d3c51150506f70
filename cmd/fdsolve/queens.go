package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gitrdm/finitedomain/internal/puzzle"
	"github.com/gitrdm/finitedomain/internal/tracer"
)

var queensCmd = &cobra.Command{
	Use:   "queens <n>",
	Short: "solve the n-queens puzzle for a given board size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("queens: %q is not a positive board size", args[0])
		}

		model, rows := puzzle.BuildQueensModel(n)
		model.SetObserver(tracer.New(logger))

		solver := model.Solve()
		solution, ok := solver.Next()
		if !ok {
			return fmt.Errorf("queens: no solution for n=%d", n)
		}

		for i, id := range rows {
			col, _ := solution.Var(id).Value()
			fmt.Fprintf(cmd.OutOrStdout(), "row %d: column %d\n", i, col)
		}
		return nil
	},
}
