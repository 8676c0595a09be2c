package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestValidate_Clean(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "shuffle = \"uniform\"\nmax_rounds = 500\nrecord_results = true\nstats_db = \""+
		filepath.ToSlash(filepath.Join(dir, "results.db"))+"\"\n")

	results, err := NewValidator(path).Validate()

	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidate_Problems(t *testing.T) {
	path := writeConfig(t, "shuffle = \"riffle\"\nmax_rounds = 0\nrecord_results = true\nstats_db = \"\"\nhand_size = 5\n")

	results, err := NewValidator(path).Validate()

	require.NoError(t, err)
	assert.Len(t, results.Errors, 3)
	require.Len(t, results.Warnings, 1)
	assert.Contains(t, results.Warnings[0], "hand_size")
}

func TestValidate_Warnings(t *testing.T) {
	path := writeConfig(t, "shuffle = \"classic\"\nmax_rounds = 10\nrecord_results = false\n")

	results, err := NewValidator(path).Validate()

	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Len(t, results.Warnings, 2)
}

func TestValidate_Unreadable(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.toml")).Validate()
	assert.Error(t, err)

	_, err = NewValidator(writeConfig(t, "shuffle = ")).Validate()
	assert.Error(t, err)
}
