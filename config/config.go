// Package config loads application settings from defaults, an optional TOML
// file and WORDCHIPS_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/wordchips/gesture"
	"github.com/lixenwraith/wordchips/layout"
)

// Environment variables
const (
	EnvPrefix        = "WORDCHIPS_"
	EnvConfigFile    = EnvPrefix + "CONFIG"
	EnvDeckDir       = EnvPrefix + "DECK_DIR"
	EnvLogFile       = EnvPrefix + "LOG_FILE"
	EnvLogLevel      = EnvPrefix + "LOG_LEVEL"
	EnvAudioEnabled  = EnvPrefix + "AUDIO_ENABLED"
	EnvMasterVolume  = EnvPrefix + "MASTER_VOLUME"
	EnvClickTimeMS   = EnvPrefix + "CLICK_TIME_MS"
	EnvClickDistance = EnvPrefix + "CLICK_DISTANCE"
	EnvSeed          = EnvPrefix + "SEED"
)

// Config is the complete application configuration
type Config struct {
	DeckDir string `toml:"deck_dir"`
	// Seed for fragment shuffling; 0 seeds from the clock
	Seed uint64 `toml:"seed"`

	Layout  LayoutConfig  `toml:"layout"`
	Gesture GestureConfig `toml:"gesture"`
	Audio   AudioConfig   `toml:"audio"`
	Log     LogConfig     `toml:"log"`
}

// LayoutConfig holds chip spacing in terminal cells
type LayoutConfig struct {
	Spacing    float64 `toml:"spacing" validate:"gte=0"`
	RowHeight  float64 `toml:"row_height" validate:"gt=0"`
	Padding    float64 `toml:"padding" validate:"gte=0"`
	BandHeight float64 `toml:"band_height" validate:"gte=0"`
}

// GestureConfig holds click disambiguation thresholds
type GestureConfig struct {
	ClickTimeMS   int     `toml:"click_time_ms" validate:"gt=0"`
	ClickDistance float64 `toml:"click_distance" validate:"gte=0"`
}

// AudioConfig holds feedback sound settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume" validate:"gte=0,lte=1"`
}

// LogConfig holds log destination and level
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration for the terminal host
func Default() *Config {
	return &Config{
		DeckDir: "./decks",
		Layout: LayoutConfig{
			Spacing:    1,
			RowHeight:  2,
			Padding:    1,
			BandHeight: 8,
		},
		Gesture: GestureConfig{
			ClickTimeMS:   int(gesture.DefaultClickTime / time.Millisecond),
			ClickDistance: 1,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
		Log: LogConfig{
			File:  "wordchips.log",
			Level: "info",
		},
	}
}

// Load builds the configuration: defaults, then the TOML file at path
// (or $WORDCHIPS_CONFIG when path is empty), then the environment
// A .env file in the working directory is loaded first when present
func Load(path string) (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment without overriding
// variables that are already set; missing files are ignored
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// LoadFile overlays a TOML file onto cfg; keys absent from the file keep their values
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from environment lookups
// Unparseable values are ignored
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDeckDir); v != "" {
		c.DeckDir = v
	}
	if v := getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}

	if v := getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if v := getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		}
	}

	if v := getenv(EnvClickTimeMS); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Gesture.ClickTimeMS = n
		}
	}
	if v := getenv(EnvClickDistance); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			c.Gesture.ClickDistance = f
		}
	}

	if v := getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks value ranges
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LayoutParams converts the layout section
func (c *Config) LayoutParams() layout.Params {
	return layout.Params{
		Spacing:    c.Layout.Spacing,
		RowHeight:  c.Layout.RowHeight,
		Padding:    c.Layout.Padding,
		BandHeight: c.Layout.BandHeight,
	}
}

// GestureConfig converts the gesture section
func (c *Config) GestureConfig() gesture.Config {
	return gesture.Config{
		ClickTime:     time.Duration(c.Gesture.ClickTimeMS) * time.Millisecond,
		ClickDistance: c.Gesture.ClickDistance,
	}
}
