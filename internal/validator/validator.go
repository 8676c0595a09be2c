package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/gofish/internal/config"
	"github.com/arcanaland/gofish/internal/deck"
)

// lowRoundCap is the cap below which games are likely to end by settlement
const lowRoundCap = 50

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks a config file without applying environment overrides.
// A returned error means the file could not be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	cfg, err := v.validateConfigToml()
	if err != nil {
		return v.Results, err
	}

	v.validateShuffle(cfg)
	v.validateMaxRounds(cfg)
	v.validateStatsDB(cfg)

	return v.Results, nil
}

func (v *Validator) validateConfigToml() (*config.Config, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(v.ConfigPath), err)
	}

	for _, key := range meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key %q (known keys: %s)", key.String(), strings.Join(config.Keys, ", ")))
	}
	return cfg, nil
}

func (v *Validator) validateShuffle(cfg *config.Config) {
	mode, err := deck.ParseShuffleMode(cfg.Shuffle)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("shuffle: %v", err))
		return
	}
	if mode == deck.ShuffleClassic {
		v.Results.Warnings = append(v.Results.Warnings,
			"shuffle = \"classic\" does not produce uniformly distributed deals; use \"uniform\" for fair shuffles")
	}
}

func (v *Validator) validateMaxRounds(cfg *config.Config) {
	switch {
	case cfg.MaxRounds <= 0:
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("max_rounds must be positive, got %d", cfg.MaxRounds))
	case cfg.MaxRounds < lowRoundCap:
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("max_rounds = %d is low; games may end by settlement before all sets are made", cfg.MaxRounds))
	}
}

// validateStatsDB checks that results can be recorded where configured
func (v *Validator) validateStatsDB(cfg *config.Config) {
	if !cfg.RecordResults {
		return
	}
	if cfg.StatsDB == "" {
		v.Results.Errors = append(v.Results.Errors, "stats_db is required when record_results is true")
		return
	}

	dir := filepath.Dir(cfg.StatsDB)
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("stats_db directory %s does not exist yet; it will be created", dir))
	case err != nil:
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("stats_db directory: %v", err))
	case !info.IsDir():
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("stats_db parent %s is not a directory", dir))
	}
}
