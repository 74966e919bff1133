package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/ranking"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var (
	flagReset  bool
	flagRecent int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top 10 ranking",
	Long: `Display the top 10 ranking with medals and badges.

With a SQLite database the play history of every mode is summarized
below the ranking. A .json --db path only holds the ranking.

Examples:
  blocks scores
  blocks scores --recent 5
  blocks scores --db ./ranking.json
  blocks scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the ranking")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list the N most recent games per mode")
}

func runScores(_ *cobra.Command, _ []string) error {
	scores, err := tui.OpenScorekeeper(flagDBPath, logger)
	if err != nil {
		return fmt.Errorf("opening scores: %w", err)
	}
	defer scores.Close()

	if flagReset {
		if scores.Board() == nil {
			return errNoRanking
		}
		if err := scores.Board().Clear(); err != nil {
			return fmt.Errorf("clearing ranking: %w", err)
		}
		fmt.Println("Ranking cleared.")
		return nil
	}

	printRanking(scores.Top())

	if scores.History() == nil {
		return nil
	}
	for _, mode := range registry.List() {
		if err := printHistory(scores, mode); err != nil {
			return err
		}
	}
	return nil
}

func printRanking(entries []ranking.Entry) {
	fmt.Printf("Top %d\n", ranking.MaxEntries)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No ranking yet.")
		fmt.Println()
		fmt.Println("Play 'blocks play' to claim the first place!")
		return
	}

	// Print header
	fmt.Printf("  %-3s  %-16s  %7s  %3s  %5s  %6s  %-10s  %-15s  %s\n",
		"#", "Name", "Score", "Lvl", "Time", "Combos", "Date", "Medal", "Badge")
	fmt.Printf("  %-3s  %-16s  %7s  %3s  %5s  %6s  %-10s  %-15s  %s\n",
		"-", "----", "-----", "---", "----", "------", "----", "-----", "-----")

	for _, e := range entries {
		fmt.Printf("  %-3d  %-16s  %7d  %3d  %5s  %6d  %-10s  %-15s  %s\n",
			e.Rank, e.Name, e.Score, e.Level, e.ElapsedTime, e.Combos, e.Date,
			e.Medal.Symbol()+" "+string(e.Medal), e.Badge)
	}
}

func printHistory(scores *tui.Scorekeeper, mode registry.GameInfo) error {
	stats := scores.Stats(mode.ID)
	if stats == nil || stats.GamesCount == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("%s - %d games, best %d, average %.0f, last played %s\n",
		mode.Title, stats.GamesCount, stats.HighScore, stats.AvgScore,
		stats.LastPlayed.Local().Format("2006-01-02 15:04"))

	if flagRecent <= 0 {
		return nil
	}
	plays, err := scores.History().RecentPlays(mode.ID, flagRecent)
	if err != nil {
		return fmt.Errorf("loading recent games: %w", err)
	}
	for _, p := range plays {
		player := p.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %s  %-16s  %7d  lvl %-3d  %s\n",
			p.CreatedAt.Local().Format("2006-01-02 15:04"), player, p.Score, p.Level,
			ranking.FormatElapsed(p.Elapsed.Round(time.Second)))
	}
	return nil
}

// errNoRanking is returned when --reset finds nothing to clear.
var errNoRanking = errors.New("no ranking configured")
