// gifteroids is an asteroids-style terminal shooter: knock drifting gift
// boxes out of the sky with snowballs before the score runs down.
//
// Usage:
//
//	gifteroids list               - List game modes
//	gifteroids play [mode]        - Play (menu when no mode is given)
//	gifteroids serve              - Start SSH server for remote play
//	gifteroids scores [mode]      - Show high scores
//	gifteroids simulate [mode]    - Run a headless game and print a summary
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.gifteroids/scores.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gifteroids/internal/core"

	// Register game modes
	_ "github.com/vovakirdan/gifteroids/internal/games/gifteroids"
)

const defaultMode = "gifteroids"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gifteroids",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gifteroids",
	Short: "Gifteroids - an asteroids-style shooter in your terminal",
	Long: `Gifteroids puts you in a small ship surrounded by drifting gift boxes.
Throw snowballs to split them into smaller boxes until none are left, and
watch out for santa dropping new ones.

Available commands:
  list      - Show the game modes
  play      - Play a mode, or pick one from the menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run a headless deterministic game

Examples:
  gifteroids play
  gifteroids play gifteroids_endless --difficulty hard
  gifteroids serve --ssh :2222
  gifteroids scores gifteroids
  gifteroids simulate --ticks 3600 --seed 7`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gifteroids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// runtimeConfig builds the runtime config shared by every command.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// modeArg returns the mode named in args, or the campaign by default.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultMode
}

// fail prints an error in the CLI's format and exits.
func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", a...)
	os.Exit(1)
}
