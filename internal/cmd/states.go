package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezBadminton/gotennis/tennis"
)

// tennis states
func States(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "Lists every score a game can reach",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			player1, player2 := opts.players()
			progression := tennis.NewProgressionGraph()

			out := cmd.OutOrStdout()
			for state, depth := range progression.States() {
				points := fmt.Sprintf("%d-%d", state.Points1, state.Points2)
				fmt.Fprintf(
					out,
					"%d\t%-4s %-28s %s\n",
					depth, points, state.Score(player1, player2), state.Phase(),
				)
			}
			return nil
		},
	}
}
