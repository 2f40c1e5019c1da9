// Package config loads file-mover settings from a TOML file with environment
// overrides layered on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"file-mover/internal/logger"
)

const appDir = "file-mover"

// JournalOff disables the disposition journal when used as journal_path.
const JournalOff = "off"

const (
	DismissReprompt = "reprompt"
	DismissSkip     = "skip"
)

// Display controls how long destination paths are elided in the dialogs.
type Display struct {
	MaxLength int    `toml:"max_length"`
	Keep      int    `toml:"keep"`
	Marker    string `toml:"marker"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the effective application configuration.
type Config struct {
	RegistryPath      string  `toml:"registry_path"`
	JournalPath       string  `toml:"journal_path"`
	OverwriteExisting bool    `toml:"overwrite_existing"`
	DismissAction     string  `toml:"dismiss_action"`
	Display           Display `toml:"display"`
	Logging           Logging `toml:"logging"`
}

// Default returns the built-in configuration. The registry lives in the
// working directory as destinations.txt.
func Default() *Config {
	return &Config{
		RegistryPath:  "destinations.txt",
		JournalPath:   defaultJournalPath(),
		DismissAction: DismissReprompt,
		Display: Display{
			MaxLength: 40,
			Keep:      20,
			Marker:    " ...",
		},
		Logging: Logging{
			Level:  "info",
			Format: string(logger.FormatConsole),
		},
	}
}

func defaultJournalPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return JournalOff
	}
	return filepath.Join(dir, appDir, "journal.db")
}

// DefaultPath is the config location used when --config is not given.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, appDir, "config.toml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error; exists reports whether one was read.
func Load(path string) (cfg *Config, exists bool, err error) {
	cfg = Default()

	if path != "" {
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			exists = true
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, true, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(readErr, fs.ErrNotExist):
		default:
			return nil, false, fmt.Errorf("read config %s: %w", path, readErr)
		}
	}

	cfg.applyEnv()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, exists, err
	}
	return cfg, exists, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FILE_MOVER_REGISTRY"); v != "" {
		c.RegistryPath = v
	}
	if v := os.Getenv("FILE_MOVER_JOURNAL"); v != "" {
		c.JournalPath = v
	}
	if os.Getenv("DEBUG") == "1" {
		c.Logging.Level = "debug"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) normalize() {
	c.RegistryPath = expandHome(strings.TrimSpace(c.RegistryPath))
	c.JournalPath = strings.TrimSpace(c.JournalPath)
	if c.JournalPath != JournalOff {
		c.JournalPath = expandHome(c.JournalPath)
	}
	c.DismissAction = strings.ToLower(strings.TrimSpace(c.DismissAction))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// JournalEnabled reports whether dispositions should be recorded.
func (c *Config) JournalEnabled() bool {
	return c.JournalPath != "" && c.JournalPath != JournalOff
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
