package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezBadminton/gotennis/core"
	"github.com/ezBadminton/gotennis/tennis"
)

// tennis play
func Play(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play [point...]",
		Short: "Plays the given points and prints the score after each one",
		Long: heredoc.Doc(`play starts a game at Love-All and awards the given
			points in order. A point is given as the name of the
			player who won it or as 1 or 2 for the first or second
			player. Points for unknown players are skipped.

			The score is printed once at the start and again after
			every point.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			player1, player2 := opts.players()
			game, err := tennis.NewGame(player1, player2)
			if err != nil {
				return err
			}

			log := logrus.WithFields(logrus.Fields{
				"game":    uuid.NewString(),
				"player1": player1,
				"player2": player2,
			})
			log.Debug("game started")

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, game.Score())

			for i, point := range args {
				if !awardPoint(game, point) {
					log.WithField("point", point).Warn("unknown player, point skipped")
					continue
				}

				log.WithFields(logrus.Fields{
					"point": i + 1,
					"score": game.Score(),
					"phase": game.Phase(),
				}).Trace("point played")
				fmt.Fprintln(out, game.Score())
			}

			if winner, err := game.GetWinner(); err == nil {
				loser, _ := core.Loser(game)
				players := game.Players()
				log.WithFields(logrus.Fields{
					"winner": players[winner].Id(),
					"loser":  players[loser].Id(),
				}).Info("game over")
			}
			return nil
		},
	}
}

// Player names take precedence over the 1 and 2 shorthands.
func awardPoint(game *tennis.Game, point string) bool {
	if game.WonPoint(point) {
		return true
	}

	switch point {
	case "1":
		return game.AwardPoint(0)
	case "2":
		return game.AwardPoint(1)
	}
	return false
}
