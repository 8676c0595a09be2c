package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcanaland/gofish/internal/config"
	"github.com/arcanaland/gofish/internal/console"
	"github.com/arcanaland/gofish/internal/game"
	"github.com/arcanaland/gofish/internal/stats"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game of Go Fish",
	Long: `Play deals seven cards to you and to the computer and alternates turns
until every rank has been collected as a set.

Enter ranks as A, 2-9, 10, or 11, 12, 13 for Jack, Queen and King.

Examples:
  gofish play
  gofish play --seed 42 --shuffle uniform
  gofish play --max-rounds 100 --no-record`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if err := applyPlayFlags(cmd, cfg); err != nil {
			return err
		}

		logger := newLogger(cmd)
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Debug("starting game", "seed", seed, "shuffle", cfg.Shuffle, "max_rounds", cfg.MaxRounds)

		noColor, _ := cmd.Flags().GetBool("no-color")
		out := cmd.OutOrStdout()
		con := console.New(cmd.InOrStdin(), out, cfg.Color && !noColor && console.IsTerminal(out))

		fmt.Fprintln(out, "Welcome to Go Fish!")
		g := game.New(con, con, game.Options{
			Rand:      rand.New(rand.NewSource(seed)),
			Shuffle:   cfg.ShuffleMode(),
			MaxRounds: cfg.MaxRounds,
			Logger:    logger,
		})

		res, err := g.Play()
		if err != nil {
			if errors.Is(err, game.ErrInputClosed) {
				fmt.Fprintf(out, "\nInput closed; game abandoned at human %d, cpu %d.\n", res.Human, res.Computer)
			}
			return err
		}
		con.PrintResult(res)

		if cfg.RecordResults {
			if err := recordResult(cmd.Context(), cfg, stats.NewResult(g, res, cfg.Shuffle, time.Now())); err != nil {
				logger.Warn("could not record result", "error", err)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64("seed", 0, "Seed for shuffling and computer guesses (0 picks one from the clock)")
	playCmd.Flags().String("shuffle", "", "Shuffle algorithm: classic or uniform")
	playCmd.Flags().Int("max-rounds", 0, "Rounds before remaining ranks are settled by majority")
	playCmd.Flags().Bool("no-color", false, "Disable colored output")
	playCmd.Flags().Bool("no-record", false, "Do not record the result")
}

// applyPlayFlags overrides config values with explicitly set flags
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed, _ := flags.GetInt64("seed")
		cfg.Seed = seed
	}
	if flags.Changed("shuffle") {
		shuffle, _ := flags.GetString("shuffle")
		if err := cfg.Set("shuffle", shuffle); err != nil {
			return err
		}
	}
	if flags.Changed("max-rounds") {
		rounds, _ := flags.GetInt("max-rounds")
		cfg.MaxRounds = rounds
	}
	if noRecord, _ := flags.GetBool("no-record"); noRecord {
		cfg.RecordResults = false
	}
	return cfg.Validate()
}

func recordResult(ctx context.Context, cfg *config.Config, result *stats.Result) error {
	if ctx == nil {
		ctx = context.Background()
	}
	repo, err := stats.NewSQLiteRepository(cfg.StatsDB)
	if err != nil {
		return err
	}
	defer repo.Close()

	return repo.Save(ctx, result)
}
