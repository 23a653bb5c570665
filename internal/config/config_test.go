package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, DefaultDBName, cfg.DBPath)
	assert.Equal(t, "q", cfg.Keys.Quit)

	// Second load reads the file it just wrote.
	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("db_path = \"custom.db\"\ndefault_weeks_window = 2\n\n[keys]\nquit = \"Q\"\n"), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 2, cfg.DefaultWeeks)
	assert.Equal(t, "Q", cfg.Keys.Quit)
}

func TestLoadOrCreateBackfillsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("db_path = \"\"\ndefault_weeks_window = 9\n"), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDBName, cfg.DBPath)
	assert.Equal(t, 0, cfg.DefaultWeeks)
}

func TestLoadOrCreateRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("db_path = [broken"), 0o644))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}
