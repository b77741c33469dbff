package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezBadminton/gotennis/internal/config"
)

const version = "v0.1.0"

// Settings shared by all commands. They are filled
// in before any command runs.
type options struct {
	config *config.Config

	envFile          string
	player1, player2 string
	trace            bool
}

// The player names from the flags, falling back to the config
func (o *options) players() (string, string) {
	player1, player2 := o.player1, o.player2
	if player1 == "" {
		player1 = o.config.Player1
	}
	if player2 == "" {
		player2 = o.config.Player2
	}
	return player1, player2
}

func Root() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tennis",
		Short: "Keeps the score of a tennis game",
		Long: heredoc.Doc(`tennis keeps the score of a single tennis game
			between two players and prints it the way an umpire
			calls it (e.g. "Thirty-Fifteen", "Deuce").

			The player names default to the TENNIS_PLAYER1 and
			TENNIS_PLAYER2 variables, which can also be put into
			a .env file in the working directory.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}
			opts.config = cfg

			level, _ := cfg.Level()
			logrus.SetLevel(level)

			// If --trace flag is provided, set logging level to Trace.
			if opts.trace {
				logrus.SetLevel(logrus.TraceLevel)
			}
			return nil
		},
	}

	// global flags
	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.trace, "trace", "t", false, "Show Trace Information")
	flags.StringVar(&opts.envFile, "env-file", "", "Read variables from this file instead of .env")
	flags.StringVar(&opts.player1, "player1", "", "Name of the first player")
	flags.StringVar(&opts.player2, "player2", "", "Name of the second player")

	root.SetVersionTemplate(version + "\n")
	root.Version = version

	root.AddCommand(Play(opts))
	root.AddCommand(States(opts))

	return root
}
