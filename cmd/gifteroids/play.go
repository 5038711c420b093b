package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gifteroids/internal/config"
	"github.com/vovakirdan/gifteroids/internal/games/gifteroids"
	"github.com/vovakirdan/gifteroids/internal/platform/tui"
	"github.com/vovakirdan/gifteroids/internal/registry"
	"github.com/vovakirdan/gifteroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play gifteroids",
	Long: `Start playing. Without a mode, a menu lets you pick campaign or
endless and browse the scoreboard.

Controls:
  Left/Right, A/D  - Rotate
  Up, W            - Thrust
  Space            - Throw a snowball
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Back to menu (paused or game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More ships, longer grace, slower gifts
  normal - The configured values
  hard   - One spare ship, faster gifts, slower throws
  fixed  - No speed-up between endless waves

Examples:
  gifteroids play
  gifteroids play gifteroids_endless
  gifteroids play --difficulty easy
  gifteroids play --config ./my-gifteroids.yaml --log-file game.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
}

func runPlay(_ *cobra.Command, args []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	// Surface a broken custom config before the screen switches over.
	if _, err := config.LoadGifteroids(flagConfig); err != nil {
		fail("%v", err)
	}
	gifteroids.SetConfigPath(flagConfig)
	gifteroids.SetDifficultyPreset(preset)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := runtimeConfig(width, height)

	opts := tui.Options{}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		defer f.Close()

		fileLogger := log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "gifteroids",
		})
		fileLogger.SetLevel(logger.GetLevel())
		opts.Logger = fileLogger
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	var runErr error
	if len(args) == 0 {
		runErr = tui.RunSession(store, cfg, opts)
	} else {
		game, err := registry.Create(args[0])
		if err != nil {
			if store != nil {
				store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'gifteroids list' to see the modes.")
			os.Exit(1)
		}
		runErr = tui.Run(game, store, cfg, opts)
	}

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
