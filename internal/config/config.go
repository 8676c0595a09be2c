package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/arcanaland/gofish/internal/deck"
	"github.com/arcanaland/gofish/internal/game"
)

// Config represents the application configuration
type Config struct {
	Shuffle       string `toml:"shuffle"`
	MaxRounds     int    `toml:"max_rounds"`
	Color         bool   `toml:"color"`
	RecordResults bool   `toml:"record_results"`
	StatsDB       string `toml:"stats_db"`
	Seed          int64  `toml:"seed"`
}

// ErrInvalidShuffle is returned when the shuffle setting names no known mode
var ErrInvalidShuffle = errors.New("invalid shuffle mode")

// Keys lists the settable configuration keys
var Keys = []string{"shuffle", "max_rounds", "color", "record_results", "stats_db", "seed"}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Shuffle:       string(deck.ShuffleClassic),
		MaxRounds:     game.DefaultMaxRounds,
		Color:         true,
		RecordResults: true,
		StatsDB:       GetDefaultStatsPath(),
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDefaultStatsPath returns where finished games are recorded
func GetDefaultStatsPath() string {
	return filepath.Join(GetXDGDataHome(), "gofish", "results.db")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "gofish", "config.toml")
}

// LoadFile loads the config at configPath, creating a default file if none
// exists, then applies environment overrides
func LoadFile(configPath string) (*Config, error) {
	var config *Config

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		config = Default()
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the settings can drive a game
func (c *Config) Validate() error {
	if _, err := deck.ParseShuffleMode(c.Shuffle); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidShuffle, err)
	}
	if c.MaxRounds <= 0 {
		return fmt.Errorf("max_rounds must be positive, got %d", c.MaxRounds)
	}
	return nil
}

// ShuffleMode returns the parsed shuffle setting
func (c *Config) ShuffleMode() deck.ShuffleMode {
	m, err := deck.ParseShuffleMode(c.Shuffle)
	if err != nil {
		return deck.ShuffleClassic
	}
	return m
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()
	if err := writeConfig(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// applyEnv overrides settings from GOFISH_* variables. A .env file in the
// working directory is loaded first if present.
func applyEnv(c *Config) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	overrides := map[string]string{
		"GOFISH_SHUFFLE":        "shuffle",
		"GOFISH_MAX_ROUNDS":     "max_rounds",
		"GOFISH_COLOR":          "color",
		"GOFISH_RECORD_RESULTS": "record_results",
		"GOFISH_STATS_DB":       "stats_db",
		"GOFISH_SEED":           "seed",
	}
	for env, key := range overrides {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if err := c.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

// Set assigns a single setting from its string form
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "shuffle":
		m, err := deck.ParseShuffleMode(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidShuffle, err)
		}
		c.Shuffle = string(m)
	case "max_rounds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_rounds: %w", err)
		}
		c.MaxRounds = n
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		c.Color = b
	case "record_results":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("record_results: %w", err)
		}
		c.RecordResults = b
	case "stats_db":
		c.StatsDB = value
	case "seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		c.Seed = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// SetValueInFile loads the config file, changes one key and writes it back
func SetValueInFile(configPath, key, value string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if _, err := createDefaultConfig(configPath); err != nil {
			return err
		}
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return fmt.Errorf("error decoding config file: %w", err)
	}
	if err := config.Set(key, value); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}
	return writeConfig(configPath, config)
}
