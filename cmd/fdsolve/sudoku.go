package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/finitedomain/internal/puzzle"
	"github.com/gitrdm/finitedomain/internal/tracer"
)

var sudokuCmd = &cobra.Command{
	Use:   "sudoku <file.yaml>",
	Short: "solve a sudoku puzzle loaded from a YAML fixture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := puzzle.LoadSudoku(args[0])
		if err != nil {
			return err
		}

		model, grid := puzzle.BuildSudokuModel(board)
		model.SetObserver(tracer.New(logger))

		solver := model.Solve()
		solution, ok := solver.Next()
		if !ok {
			return fmt.Errorf("sudoku: no solution for %s", args[0])
		}

		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				v, _ := solution.Var(grid[r][c]).Value()
				fmt.Fprintf(cmd.OutOrStdout(), "%d ", v)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}
