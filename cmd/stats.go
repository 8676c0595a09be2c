package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/gofish/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show results of recorded games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		out := cmd.OutOrStdout()

		if _, err := os.Stat(cfg.StatsDB); os.IsNotExist(err) {
			fmt.Fprintln(out, "No games recorded yet.")
			return nil
		}

		repo, err := stats.NewSQLiteRepository(cfg.StatsDB)
		if err != nil {
			return err
		}
		defer repo.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		return renderStats(cmd.Context(), out, repo, limit)
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent games to list")
}

// renderStats prints a summary box and a table of recent games
func renderStats(ctx context.Context, out io.Writer, repo stats.Repository, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	summary, err := repo.Summary(ctx)
	if err != nil {
		return err
	}
	if summary.Played == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		return nil
	}

	results, err := repo.List(ctx, limit)
	if err != nil {
		return err
	}

	box := pterm.DefaultBox.WithTitle("Go Fish").WithTitleTopCenter().WithLeftPadding(2).WithRightPadding(2)
	fmt.Fprintln(out, box.Sprintf("Played: %d\nYou won: %d\nCPU won: %d\nSettled by round cap: %d\nBest score: %d",
		summary.Played, summary.HumanWins, summary.ComputerWins, summary.Truncated, summary.BestScore))

	data := pterm.TableData{{"Played", "You", "CPU", "Winner", "Rounds", "Shuffle"}}
	for _, r := range results {
		winner := r.Winner
		if r.Truncated {
			winner += " (settled)"
		}
		data = append(data, []string{
			r.PlayedAt.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(r.HumanScore),
			strconv.Itoa(r.ComputerScore),
			winner,
			strconv.Itoa(r.Rounds),
			r.Shuffle,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, table)
	return nil
}
