package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/finitedomain/internal/puzzle"
	"github.com/gitrdm/finitedomain/internal/tracer"
)

var sendMoreMoneyCmd = &cobra.Command{
	Use:   "send-more-money",
	Short: "solve the SEND + MORE = MONEY cryptarithm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cm := puzzle.BuildSendMoreMoneyModel()
		cm.Model.SetObserver(tracer.New(logger))

		solver := cm.Model.Solve()
		solution, ok := solver.Next()
		if !ok {
			return fmt.Errorf("send-more-money: no solution found")
		}

		for _, letter := range puzzle.SendMoreMoneyLetters {
			v, _ := solution.Var(cm.Letters[letter]).Value()
			fmt.Fprintf(cmd.OutOrStdout(), "%c = %d\n", letter, v)
		}
		return nil
	},
}
