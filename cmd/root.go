package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/minesweepah/game"
)

var (
	config     = NewConfig()
	configPath string
	flagConfig = NewConfig()
)

var rootCmd = &cobra.Command{
	Use:   "minesweepah",
	Short: "Play Minesweeper in the terminal, by hand or by computer",
	Long: `minesweepah is a Minesweeper game played over standard input.

Run with no arguments to play manually
	minesweepah

Sweep with "s ROW COL", flag with "f ROW COL", quit with "q".

Use the director flag to make the computer play for you
	minesweepah --director
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}

		logger := logrus.New()
		logger.SetOutput(cmd.ErrOrStderr())
		level, err := logrus.ParseLevel(config.LogLevel)
		if err != nil {
			return errors.Wrap(err, "parsing log level")
		}
		logger.SetLevel(level)

		gameConfig := config.GameConfig()
		gameConfig.Logger = logger

		var director game.Director
		if config.Director {
			director = config.Strategy.newDirector(config.DirectorInterval)
			gameConfig.Director = director
		}

		g, err := game.NewGame(gameConfig)
		if err != nil {
			return err
		}
		defer g.Close()

		if director != nil {
			director.ActContinuously()
			return watch(g, cmd.OutOrStdout())
		}
		return play(g, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// loadConfig layers the config file, then the environment, then whichever
// flags were given explicitly.
func loadConfig(cmd *cobra.Command) error {
	if configPath != "" {
		if err := config.LoadFile(configPath); err != nil {
			return err
		}
	}

	if err := config.LoadEnv(nil); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Width = flagConfig.Width
	}
	if flags.Changed("height") {
		config.Height = flagConfig.Height
	}
	if flags.Changed("mineiness") {
		config.Mineiness = flagConfig.Mineiness
	}
	if flags.Changed("seed") {
		config.Seed = flagConfig.Seed
	}
	if flags.Changed("tick") {
		config.TickInterval = flagConfig.TickInterval
	}
	if flags.Changed("log-level") {
		config.LogLevel = flagConfig.LogLevel
	}
	if flags.Changed("director") {
		config.Director = flagConfig.Director
	}
	if flags.Changed("strategy") {
		config.Strategy = flagConfig.Strategy
	}
	if flags.Changed("director-interval") {
		config.DirectorInterval = flagConfig.DirectorInterval
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().IntVarP(&flagConfig.Width, "width", "w", flagConfig.Width, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&flagConfig.Height, "height", "h", flagConfig.Height, "Height of game board, in cells")
	rootCmd.Flags().Float64VarP(&flagConfig.Mineiness, "mineiness", "m", flagConfig.Mineiness, "Chance of each cell being a mine, in [0, 1)")
	rootCmd.Flags().Int64Var(&flagConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().DurationVar(&flagConfig.TickInterval, "tick", flagConfig.TickInterval, "How often the game clock advances")
	rootCmd.Flags().StringVar(&flagConfig.LogLevel, "log-level", flagConfig.LogLevel, "Log level (debug, info, warning, error)")
	rootCmd.Flags().BoolVarP(&flagConfig.Director, "director", "d", false, "Make the computer play")
	rootCmd.Flags().Var(&flagConfig.Strategy, "strategy", `How the computer plays, with --director.
constraint: flag and sweep whatever the revealed numbers prove, otherwise guess the safest cell
random: sweep any covered cell`)
	rootCmd.Flags().DurationVar(&flagConfig.DirectorInterval, "director-interval", flagConfig.DirectorInterval, "Delay between the computer's moves")
}
