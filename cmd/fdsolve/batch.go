package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/finitedomain/internal/batch"
	"github.com/gitrdm/finitedomain/internal/puzzle"
	"github.com/gitrdm/finitedomain/internal/runconfig"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "solve every sudoku fixture in a directory concurrently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := os.ReadDir(args[0])
		if err != nil {
			return fmt.Errorf("batch: reading %s: %w", args[0], err)
		}

		var paths []string
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
				continue
			}
			paths = append(paths, filepath.Join(args[0], entry.Name()))
		}
		sort.Strings(paths)

		jobs := make([]batch.Job, len(paths))
		for i, path := range paths {
			path := path
			jobs[i] = batch.Job{
				Name: filepath.Base(path),
				Solve: func(ctx context.Context) (batch.Solution, error) {
					board, err := puzzle.LoadSudoku(path)
					if err != nil {
						return nil, err
					}
					model, grid := puzzle.BuildSudokuModel(board)
					solver := model.Solve()
					solution, ok := solver.Next()
					if !ok {
						return nil, fmt.Errorf("no solution")
					}
					rendered := make(batch.Solution, 81)
					for r := 0; r < 9; r++ {
						for c := 0; c < 9; c++ {
							v, _ := solution.Var(grid[r][c]).Value()
							rendered[fmt.Sprintf("%d,%d", r, c)] = fmt.Sprintf("%d", v)
						}
					}
					return rendered, nil
				},
			}
		}

		cfg, err := runconfig.Load(cmd)
		if err != nil {
			return err
		}

		results, stats := batch.Run(cmd.Context(), cfg.BatchConcurrency, jobs)
		for _, result := range results {
			if result.Err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %v\n", result.Name, result.Err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: solved\n", result.Name)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "stats: %+v\n", stats.GetStats())
		return nil
	},
}
