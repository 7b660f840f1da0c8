// Package config loads runtime settings from YAML and GAMEFEEL_ environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gamefeel/component"
	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/parameter"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "GAMEFEEL_"

// Host front-ends
const (
	HostWindow   = "window"
	HostTerminal = "terminal"
	HostHeadless = "headless"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Host     string                    `yaml:"host" env:"HOST"`
	Player   component.PlayerComponent `yaml:"player" envPrefix:"PLAYER_"`
	Bindings input.BindingNames        `yaml:"bindings" envPrefix:"BIND_"`
	Gamepad  GamepadConfig             `yaml:"gamepad" envPrefix:"GAMEPAD_"`
	Window   WindowConfig              `yaml:"window" envPrefix:"WINDOW_"`
	Audio    AudioConfig               `yaml:"audio" envPrefix:"AUDIO_"`
	Log      LogConfig                 `yaml:"log" envPrefix:"LOG_"`
	Debug    DebugConfig               `yaml:"debug" envPrefix:"DEBUG_"`
}

type GamepadConfig struct {
	Deadzone         float64 `yaml:"deadzone" env:"DEADZONE"`
	TriggerThreshold float64 `yaml:"trigger_threshold" env:"TRIGGER_THRESHOLD"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	Title  string `yaml:"title" env:"TITLE"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled" env:"ENABLED"`
}

// LogConfig controls the file logger; an empty File disables logging
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // console | json
	File   string `yaml:"file" env:"FILE"`
}

// DebugConfig enables the HTTP debug server when Addr is set
type DebugConfig struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Host:     HostWindow,
		Player:   component.DefaultPlayer(),
		Bindings: input.DefaultBindingNames(),
		Gamepad: GamepadConfig{
			Deadzone:         parameter.GamepadDeadzone,
			TriggerThreshold: parameter.GamepadTriggerThreshold,
		},
		Window: WindowConfig{
			Width:  parameter.WindowWidth,
			Height: parameter.WindowHeight,
			Title:  parameter.WindowTitle,
		},
		Log: LogConfig{
			Level:  parameter.LogLevel,
			Format: parameter.LogFormat,
		},
	}
}

// Load reads path (optional), applies process environment overrides and validates
func Load(path string) (Config, error) {
	return LoadWith(path, env.ToMap(os.Environ()))
}

// LoadWith is Load with an explicit environment
func LoadWith(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field, joined, each wrapping ErrInvalid
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	switch c.Host {
	case HostWindow, HostTerminal, HostHeadless:
	default:
		bad("host %q not one of %s", c.Host, strings.Join([]string{HostWindow, HostTerminal, HostHeadless}, ", "))
	}

	if c.Player.WalkSpeed <= 0 {
		bad("player.walk_speed must be positive, got %g", c.Player.WalkSpeed)
	}
	if c.Player.RunSpeed <= 0 {
		bad("player.run_speed must be positive, got %g", c.Player.RunSpeed)
	}
	if c.Player.JumpForce < 0 {
		bad("player.jump_force must not be negative, got %g", c.Player.JumpForce)
	}
	if c.Player.MouseSensitivity <= 0 {
		bad("player.mouse_sensitivity must be positive, got %g", c.Player.MouseSensitivity)
	}

	if c.Gamepad.Deadzone < 0 || c.Gamepad.Deadzone >= 1 {
		bad("gamepad.deadzone must be in [0, 1), got %g", c.Gamepad.Deadzone)
	}
	if c.Gamepad.TriggerThreshold <= 0 || c.Gamepad.TriggerThreshold > 1 {
		bad("gamepad.trigger_threshold must be in (0, 1], got %g", c.Gamepad.TriggerThreshold)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		bad("log.level: %v", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		bad("log.format %q not console or json", c.Log.Format)
	}

	if _, err := c.Bindings.Resolve(); err != nil {
		bad("%v", err)
	}

	return errors.Join(errs...)
}

// KeyBindings resolves the validated binding names
func (c Config) KeyBindings() input.Bindings {
	b, err := c.Bindings.Resolve()
	if err != nil {
		return input.DefaultBindings()
	}
	return b
}

// GamepadTuning converts the gamepad section
func (c Config) GamepadTuning() input.GamepadTuning {
	return input.GamepadTuning{
		Deadzone:         c.Gamepad.Deadzone,
		TriggerThreshold: c.Gamepad.TriggerThreshold,
	}
}
