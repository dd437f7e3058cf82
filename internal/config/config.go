// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/kite/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Editor EditorConfig  `toml:"editor"` // [editor] table
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	ScrollOff        int    `toml:"scroll_off"`
	SystemClipboard  bool   `toml:"system_clipboard"`
	MessageTimeoutMs int    `toml:"message_timeout_ms"`
	LineNumbers      bool   `toml:"line_numbers"`
	ThemeFile        string `toml:"theme_file"` // optional TOML theme
}

// MessageTimeout returns how long status messages stay visible.
func (e EditorConfig) MessageTimeout() time.Duration {
	return time.Duration(e.MessageTimeoutMs) * time.Millisecond
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error

	// undecoded keys are reported once the logger is up
	unknownKeys []string
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			ScrollOff:        DefaultScrollOff,
			SystemClipboard:  SystemClipboard,
			MessageTimeoutMs: int(MessageTimeout / time.Millisecond),
			LineNumbers:      LineNumbers,
		},
	}
}

// DefaultConfigPath returns the config file location under the user config
// directory, or "" if that directory is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// DefaultLogPath returns the log file location under the user cache
// directory, falling back to the working directory.
func DefaultLogPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return DefaultLogFileName
	}
	return filepath.Join(cacheDir, AppName, DefaultLogFileName)
}

// decodeFile decodes filePath over cfg. Keys missing from the file keep
// their current values. A missing file is not an error.
func decodeFile(filePath string, cfg *Config) ([]string, error) {
	_, err := os.Stat(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.MessageTimeoutMs <= 0 {
		c.Editor.MessageTimeoutMs = defaults.Editor.MessageTimeoutMs
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds a configuration from defaults, the config file and flag
// overrides, in that order. An empty configFilePath selects the default
// location. A parse error is returned along with the defaults-plus-flags
// configuration so the editor can still start.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var undecoded []string
	var err error
	if effectivePath != "" {
		undecoded, err = decodeFile(effectivePath, cfg)
		if err != nil {
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, undecoded, err
}

// LoadConfig loads the configuration once and stores it for Get. It is
// called from main before the logger exists, so nothing here logs.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, unknownKeys, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// ReportUnknownKeys logs keys from the config file that were not recognized.
// Call after logger.Init.
func ReportUnknownKeys() {
	if len(unknownKeys) > 0 {
		logger.Warnf("Config: unrecognized keys: %v", unknownKeys)
	}
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
