// Command fdsolve runs the finite-domain solver against a handful of
// classic puzzles from the command line.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gitrdm/finitedomain/internal/runconfig"
	"github.com/gitrdm/finitedomain/internal/tracer"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	searchLimit int
	logger      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fdsolve",
	Short: "fdsolve solves finite-domain constraint puzzles",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := runconfig.Load(cmd)
		if err != nil {
			return err
		}
		verbose = verbose || cfg.Verbose
		if searchLimit == 0 {
			searchLimit = cfg.SearchLimit
		}

		var buildErr error
		logger, buildErr = tracer.NewLogger(verbose)
		if buildErr != nil {
			return fmt.Errorf("fdsolve: initializing logger: %w", buildErr)
		}
		logger = logger.With(zap.String("run_id", uuid.New().String()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&searchLimit, "search-limit", 0, "solution limit kept in the run config (0 = unbounded); the solve commands print only the first solution and do not read it")

	solveCmd.AddCommand(sudokuCmd, queensCmd, zebraCmd, sendMoreMoneyCmd, batchCmd)
	rootCmd.AddCommand(solveCmd)
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "solve a puzzle",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
