package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/riordanpawley/toaster/internal/toast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "c-toasts-container", cfg.Container.Class)
	assert.Equal(t, "toastsContainer", cfg.Container.ID)
	assert.Equal(t, "left", cfg.Container.Position)
	assert.Equal(t, "from-bottom", cfg.Container.Direction)
	assert.Equal(t, "c-toast", cfg.Toast.Class)
	assert.Equal(t, 10.0, cfg.Toast.CloseAfterSeconds)
	assert.True(t, cfg.Toast.AutoClose)
	assert.True(t, cfg.Keyboard.Enabled)
	assert.Equal(t, "x", cfg.Keyboard.Key)
	assert.Contains(t, cfg.Styles, "c-toast")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFiles(t *testing.T) {
	dir := t.TempDir()

	cfg, err := load([]string{filepath.Join(dir, "missing.toml")}, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FilePriority(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.toml", `
[container]
position = "right"
direction = "from-top"

[toast]
close_after_seconds = 4
`)
	local := writeFile(t, dir, "local.toml", `
[toast]
close_after_seconds = 2.5
custom_classes = ["c-toast--green", "wide"]

[styles.c-toast--green]
height = "3px"
`)

	cfg, err := load([]string{user, local}, "")
	require.NoError(t, err)

	assert.Equal(t, "right", cfg.Container.Position)
	assert.Equal(t, "from-top", cfg.Container.Direction)
	assert.Equal(t, 2.5, cfg.Toast.CloseAfterSeconds, "later files win")
	assert.Equal(t, []string{"c-toast--green", "wide"}, cfg.Toast.CustomClasses)
	assert.Equal(t, "3px", cfg.Styles["c-toast--green"].Height)
	assert.Contains(t, cfg.Styles, "c-toast", "default styles are kept")
	assert.Equal(t, "c-toast", cfg.Toast.Class, "unset keys keep defaults")
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	_, err := load(nil, filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TOASTER_TOAST__CLOSE_AFTER_SECONDS", "3")
	t.Setenv("TOASTER_KEYBOARD__KEY", "q")
	t.Setenv("TOASTER_LOG__LEVEL", "debug")

	cfg, err := load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Toast.CloseAfterSeconds)
	assert.Equal(t, "q", cfg.Keyboard.Key)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"position", "[container]\nposition = \"center\"\n", "Config.Container.Position must be one of [left right]"},
		{"direction", "[container]\ndirection = \"sideways\"\n", "Config.Container.Direction must be one of"},
		{"negative delay", "[toast]\nclose_after_seconds = -1\n", "Config.Toast.CloseAfterSeconds must be >= 0"},
		{"infinite delay", "[toast]\nclose_after_seconds = inf\n", "Config.Toast.CloseAfterSeconds must be <= 9223372036"},
		{"nan delay", "[toast]\nclose_after_seconds = nan\n", "Config.Toast.CloseAfterSeconds must be >= 0"},
		{"huge delay", "[toast]\nclose_after_seconds = 1e10\n", "Config.Toast.CloseAfterSeconds must be <= 9223372036"},
		{"quit key", "[keyboard]\nkey = \"c\"\n", `Config.Keyboard.Key must not be "c"`},
		{"dismiss now key", "[keyboard]\nkey = \"d\"\n", `Config.Keyboard.Key must not be "d"`},
		{"missing key", "[keyboard]\nenabled = true\nkey = \"\"\n", "Config.Keyboard.Key is required"},
		{"bad toml", "[container\n", "failed to load"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.toml", tt.content)
			_, err := load(nil, path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestToastOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Container.Position = "right"
	cfg.Toast.CustomClasses = []string{"c-toast--red"}
	cfg.Toast.AutoClose = false
	cfg.Keyboard.Key = "k"

	o := cfg.ToastOptions()
	assert.Equal(t, toast.PositionRight, o.Position)
	assert.Equal(t, []string{"c-toast--red"}, o.CustomClasses)
	assert.False(t, o.IsAutoClose)
	assert.Equal(t, "k", o.KeyboardShortcutKey)
	assert.NoError(t, o.Validate())

	cfg.Toast.CustomClasses[0] = "mutated"
	assert.Equal(t, "c-toast--red", o.CustomClasses[0], "options do not alias the config")
}

func TestStylesheet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Styles["c-toast--hidden"] = StyleConfig{TransitionDuration: "150ms"}

	sheet := cfg.Stylesheet()
	assert.Equal(t, 2, sheet.Len())
}

func TestLogLevel_Fallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "loud"
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestValidate_ConfigError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Container.Position = "center"
	cfg.Toast.CloseAfterSeconds = -2

	err := cfg.Validate()
	require.Error(t, err)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, cerr.Problems, 2)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
