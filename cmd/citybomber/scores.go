package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/citybomber/internal/platform/tui"
	"github.com/vovakirdan/citybomber/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs, or browse the full history.

Examples:
  citybomber scores
  citybomber scores --limit 25
  citybomber scores --player alice
  citybomber scores --browse`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs by this SSH user")
}

func runScores(_ *cobra.Command, _ []string) {
	logger := newLogger("scores")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal(logger, "cannot open run database", err)
	}
	defer store.Close()

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			logger.Error("scoreboard failed", "error", err)
		}
		return
	}

	var runs []storage.Run
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		logger.Error("cannot read runs", "error", err)
		return
	}

	fmt.Println("High Scores - City Bomber")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'citybomber play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Outcome", "Levels", "Host", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "-------", "------", "----", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-8s  %-6d  %-8s  %s\n",
			i+1, run.Score, run.Outcome, run.LevelsDestroyed, run.Host, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
