package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/gofish/internal/deck"
)

func TestLoadFile_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gofish", "config.toml")

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, string(deck.ShuffleClassic), cfg.Shuffle)
	assert.Equal(t, 500, cfg.MaxRounds)
	assert.True(t, cfg.RecordResults)
	assert.FileExists(t, path)
}

func TestLoadFile_ReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("shuffle = \"uniform\"\nmax_rounds = 42\nseed = 7\n"), 0644))

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, deck.ShuffleUniform, cfg.ShuffleMode())
	assert.Equal(t, 42, cfg.MaxRounds)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Color, "unset keys keep their defaults")
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("GOFISH_SHUFFLE", "uniform")
	t.Setenv("GOFISH_MAX_ROUNDS", "12")
	t.Setenv("GOFISH_RECORD_RESULTS", "false")

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "uniform", cfg.Shuffle)
	assert.Equal(t, 12, cfg.MaxRounds)
	assert.False(t, cfg.RecordResults)
}

func TestLoadFile_RejectsBadShuffle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("shuffle = \"riffle\"\n"), 0644))

	_, err := LoadFile(path)

	assert.ErrorIs(t, err, ErrInvalidShuffle)
}

func TestSetValueInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, SetValueInFile(path, "max_rounds", "99"))
	require.NoError(t, SetValueInFile(path, "color", "false"))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 99, cfg.MaxRounds)
	assert.False(t, cfg.Color)

	assert.Error(t, SetValueInFile(path, "max_rounds", "0"))
	assert.Error(t, SetValueInFile(path, "hand_size", "5"))
}
