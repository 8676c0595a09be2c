package cmd

import (
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/gofish/internal/config"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gofish",
	Short: "Play Go Fish against the computer in your terminal",
	Long: `Gofish is a two-player game of Go Fish: you against the computer.
Ask for a rank; if the computer holds it you take every card of that rank,
otherwise you go fish. Four of a kind makes a set. The game ends when all
13 sets are made, and the player with more sets wins.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", "", "Path to a config file (default $XDG_CONFIG_HOME/gofish/config.toml)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log turn-level details")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the file named by --config, or the default one
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath(cmd)
	return config.LoadFile(path)
}

func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.GetConfigFilePath()
}

// newLogger returns a slog logger printing through pterm
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := pterm.LogLevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = pterm.LogLevelDebug
	}
	logger := pterm.DefaultLogger.WithLevel(level).WithWriter(cmd.ErrOrStderr())
	return slog.New(pterm.NewSlogHandler(logger))
}
