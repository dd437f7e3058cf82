package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags(t *testing.T, args ...string) (*Flags, []string) {
	t.Helper()
	fs := flag.NewFlagSet("kite", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	rest, err := f.Parse(args)
	require.NoError(t, err)
	return f, rest
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, unknown, err := Load(filepath.Join(t.TempDir(), "none.toml"), nil)
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFileKeepsUnsetDefaults(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
disabled_tags = ["history"]

[editor]
scroll_off = 5
line_numbers = true
bogus = 1
`)
	cfg, unknown, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"history"}, cfg.Logger.DisabledTags)
	assert.Equal(t, 5, cfg.Editor.ScrollOff)
	assert.True(t, cfg.Editor.LineNumbers)
	assert.True(t, cfg.Editor.SystemClipboard, "absent key keeps default")
	assert.Equal(t, []string{"editor.bogus"}, unknown)
}

func TestLoadInvalidValuesReset(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "loud"
[editor]
scroll_off = -2
message_timeout_ms = 0
`)
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
	assert.Equal(t, MessageTimeout, cfg.Editor.MessageTimeout())
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "[editor\nscroll_off=")
	cfg, _, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, "[editor]\nscroll_off = 5\nsystem_clipboard = true\n")
	flags, rest := testFlags(t,
		"-scrolloff", "1",
		"-system-clipboard=false",
		"-loglevel", "warn",
		"-logfile", "-",
		"-log-tags", "history, event,",
		"a.txt", "b.txt",
	)
	assert.Equal(t, []string{"a.txt", "b.txt"}, rest)

	cfg, _, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Editor.ScrollOff)
	assert.False(t, cfg.Editor.SystemClipboard)
	assert.Equal(t, "warn", cfg.Logger.LogLevel)
	assert.Equal(t, "-", cfg.Logger.LogFilePath)
	assert.Equal(t, []string{"history", "event"}, cfg.Logger.EnabledTags)
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, "[editor]\nscroll_off = 7\n")
	flags, _ := testFlags(t)

	cfg, _, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Editor.ScrollOff)
}
