package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300*time.Millisecond, cfg.GestureConfig().ClickTime)
	assert.Equal(t, 2.0, cfg.LayoutParams().RowHeight)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDeckDir:       "/tmp/decks",
		EnvLogLevel:      "debug",
		EnvAudioEnabled:  "false",
		EnvMasterVolume:  "150",
		EnvClickTimeMS:   "250",
		EnvClickDistance: "2.5",
		EnvSeed:          "42",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "/tmp/decks", cfg.DeckDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume, "volume clamps to 1")
	assert.Equal(t, 250*time.Millisecond, cfg.GestureConfig().ClickTime)
	assert.Equal(t, 2.5, cfg.Gesture.ClickDistance)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	env := map[string]string{
		EnvAudioEnabled:  "maybe",
		EnvMasterVolume:  "loud",
		EnvClickTimeMS:   "-5",
		EnvClickDistance: "x",
		EnvSeed:          "-1",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })
	assert.Equal(t, Default(), cfg)
}

func TestLoadLayersFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordchips.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
deck_dir = "from-file"

[layout]
spacing = 2
band_height = 12

[log]
level = "warn"
`), 0o644))

	t.Chdir(dir)
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.DeckDir)
	assert.Equal(t, 2.0, cfg.Layout.Spacing)
	assert.Equal(t, 12.0, cfg.Layout.BandHeight)
	assert.Equal(t, 2.0, cfg.Layout.RowHeight, "unset keys keep defaults")
	assert.Equal(t, "error", cfg.Log.Level, "environment overrides file")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WORDCHIPS_DECK_DIR=dotenv-decks\n"), 0o644))
	t.Chdir(dir)
	// Register for restore, then clear so godotenv can set it
	t.Setenv(EnvDeckDir, "")
	require.NoError(t, os.Unsetenv(EnvDeckDir))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dotenv-decks", cfg.DeckDir)
}

func TestLoadDotEnvMissingIsFine(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layout]\nrow_height = 0\n"), 0o644))
	t.Chdir(dir)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
