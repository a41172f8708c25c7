package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagRunsLevel string
	flagRunsLimit int
	flagRunsBoard bool
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show logged runs",
	Long: `Display runs from the run log.

Without --level, shows the most recent runs of every level. With --level,
shows the runs of that level that climbed highest.

Examples:
  platformer runs
  platformer runs --level training-grounds --limit 5
  platformer runs --board
  platformer runs --level training-grounds --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsLevel, "level", "", "Show the best runs of this level")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsBoard, "board", false, "Browse runs interactively")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the runs of --level")
}

func runRuns(_ *cobra.Command, _ []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsBoard {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		if err := tui.RunBoard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagRunsClear {
		if flagRunsLevel == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs --level")
			return
		}
		if err := store.ClearRuns(flagRunsLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared runs of %s\n", flagRunsLevel)
		return
	}

	var runs []storage.Run
	title := "Recent runs"
	if flagRunsLevel != "" {
		title = fmt.Sprintf("Best runs - %s", flagRunsLevel)
		runs, err = store.BestRuns(flagRunsLevel, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' and quit to log the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-18s  %-10s  %7s  %5s  %6s  %8s  %s\n",
		"#", "Level", "Player", "Height", "Jumps", "Dashes", "Time", "Date")
	fmt.Printf("  %-4s  %-18s  %-10s  %7s  %5s  %6s  %8s  %s\n",
		"-", "-----", "------", "------", "-----", "------", "----", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = r.Source
		}
		fmt.Printf("  %-4d  %-18s  %-10s  %7.1f  %5d  %6d  %8s  %s\n",
			i+1, r.Level, player, r.MaxHeight, r.Jumps, r.Dashes,
			r.Duration.Round(time.Second), r.CreatedAt.Format("Jan 02 15:04"))
	}
}
