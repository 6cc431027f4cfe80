package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/riordanpawley/toaster/internal/dom"
	"github.com/riordanpawley/toaster/internal/toast"
)

// EnvPrefix prefixes environment overrides. Sections are separated by a
// double underscore: TOASTER_TOAST__CLOSE_AFTER_SECONDS=3.
const EnvPrefix = "TOASTER_"

// LocalFile is read from the working directory after the user config.
const LocalFile = "toaster.toml"

// Config represents the full toaster configuration
type Config struct {
	Container ContainerConfig        `koanf:"container"`
	Toast     ToastConfig            `koanf:"toast"`
	Keyboard  KeyboardConfig         `koanf:"keyboard"`
	Styles    map[string]StyleConfig `koanf:"styles" validate:"dive"`
	Log       LogConfig              `koanf:"log"`
}

// ContainerConfig describes the element that holds the toasts
type ContainerConfig struct {
	Class     string `koanf:"class" validate:"required"`
	ID        string `koanf:"id" validate:"required"`
	Position  string `koanf:"position" validate:"omitempty,oneof=left right"`
	Direction string `koanf:"direction" validate:"required,oneof=from-bottom from-top"`
}

// ToastConfig contains per-toast classes and the auto-close policy
type ToastConfig struct {
	Class             string   `koanf:"class" validate:"required"`
	TitleClass        string   `koanf:"title_class"`
	ContentClass      string   `koanf:"content_class"`
	ShowClass         string   `koanf:"show_class" validate:"required"`
	HideClass         string   `koanf:"hide_class" validate:"required"`
	CustomClasses     []string `koanf:"custom_classes"`
	CloseAfterSeconds float64  `koanf:"close_after_seconds" validate:"gte=0,lte=9223372036"`
	AutoClose         bool     `koanf:"auto_close"`
}

// KeyboardConfig contains the Ctrl+<key> dismiss shortcut
type KeyboardConfig struct {
	Enabled bool   `koanf:"enabled"`
	Key     string `koanf:"key" validate:"required_if=Enabled true,ne=c,ne=d"`
}

// StyleConfig is a stylesheet rule for one class
type StyleConfig struct {
	Height             string `koanf:"height"`
	MarginBottom       string `koanf:"margin_bottom"`
	TransitionDuration string `koanf:"transition_duration"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	File  string `koanf:"file"`
}

// DefaultConfig returns a Config with the built-in toast defaults
func DefaultConfig() *Config {
	o := toast.DefaultOptions()

	return &Config{
		Container: ContainerConfig{
			Class:     o.ContainerClass,
			ID:        o.ContainerID,
			Position:  string(o.Position),
			Direction: string(o.Direction),
		},
		Toast: ToastConfig{
			Class:             o.ToastClass,
			TitleClass:        o.TitleClass,
			ContentClass:      o.ContentClass,
			ShowClass:         o.ShowClass,
			HideClass:         o.HideClass,
			CloseAfterSeconds: o.CloseAfterSeconds,
			AutoClose:         o.IsAutoClose,
		},
		Keyboard: KeyboardConfig{
			Enabled: o.UseKeyboardShortcutToClose,
			Key:     o.KeyboardShortcutKey,
		},
		Styles: map[string]StyleConfig{
			o.ToastClass: {
				MarginBottom:       "0px",
				TransitionDuration: "0.3s",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration with priority (last wins):
// 1. Defaults
// 2. $XDG_CONFIG_HOME/toaster/config.toml
// 3. ./toaster.toml
// 4. explicitPath, which must exist when given
// 5. TOASTER_* environment variables
func Load(explicitPath string) (*Config, error) {
	var paths []string
	if p, err := xdg.SearchConfigFile("toaster/config.toml"); err == nil {
		paths = append(paths, p)
	}
	paths = append(paths, LocalFile)
	return load(paths, explicitPath)
}

func load(optional []string, explicitPath string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range optional {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", explicitPath, err)
		}
		if err := k.Load(file.Provider(explicitPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", explicitPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: TOASTER_TOAST__CLOSE_AFTER_SECONDS -> toast.close_after_seconds
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

var validate = validator.New()

// ConfigError lists every field constraint a Config failed
type ConfigError struct {
	Problems []string
	Err      error
}

func (e *ConfigError) Error() string {
	return "config validation failed: " + strings.Join(e.Problems, "; ")
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks field constraints
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ConfigError{Problems: []string{err.Error()}, Err: err}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return &ConfigError{Problems: msgs, Err: err}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Namespace(), fe.Param())
	case "required", "required_if":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", fe.Namespace(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", fe.Namespace(), fe.Param())
	case "ne":
		return fmt.Sprintf("%s must not be %q", fe.Namespace(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag())
	}
}

// ToastOptions converts the configuration into manager options
func (c *Config) ToastOptions() toast.Options {
	o := toast.DefaultOptions()
	o.ContainerClass = c.Container.Class
	o.ContainerID = c.Container.ID
	o.Position = toast.Position(c.Container.Position)
	o.Direction = toast.Direction(c.Container.Direction)
	o.ToastClass = c.Toast.Class
	o.TitleClass = c.Toast.TitleClass
	o.ContentClass = c.Toast.ContentClass
	o.ShowClass = c.Toast.ShowClass
	o.HideClass = c.Toast.HideClass
	o.CustomClasses = append([]string(nil), c.Toast.CustomClasses...)
	o.CloseAfterSeconds = c.Toast.CloseAfterSeconds
	o.IsAutoClose = c.Toast.AutoClose
	o.UseKeyboardShortcutToClose = c.Keyboard.Enabled
	o.KeyboardShortcutKey = c.Keyboard.Key
	return o
}

// Stylesheet converts the styles table into stylesheet rules, ordered by
// class name
func (c *Config) Stylesheet() *dom.Stylesheet {
	classes := make([]string, 0, len(c.Styles))
	for class := range c.Styles {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	sheet := dom.NewStylesheet()
	for _, class := range classes {
		s := c.Styles[class]
		decls := map[string]string{}
		if s.Height != "" {
			decls["height"] = s.Height
		}
		if s.MarginBottom != "" {
			decls["margin-bottom"] = s.MarginBottom
		}
		if s.TransitionDuration != "" {
			decls["transition-duration"] = s.TransitionDuration
		}
		sheet.Add(class, decls)
	}
	return sheet
}

// LogLevel returns the slog level for Log.Level
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
