package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gifteroids/internal/platform/tui"
	"github.com/vovakirdan/gifteroids/internal/registry"
	"github.com/vovakirdan/gifteroids/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode (campaign by default).

With --interactive, opens a scoreboard covering every mode.

Examples:
  gifteroids scores
  gifteroids scores gifteroids_endless --limit 20
  gifteroids scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gifteroids list' to see the modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fail("running scoreboard: %v", err)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gifteroids play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-4s  %-6s  %s\n", "Rank", "Score", "Wave", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-6s  %s\n", "----", "-----", "----", "------", "----")
	for i, entry := range scores {
		result := "-"
		if entry.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-8d  %-4d  %-6s  %s\n", i+1, entry.Score, entry.Wave, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Furthest wave: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestWave)
	}
}
