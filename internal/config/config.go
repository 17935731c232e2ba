package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

var ErrInvalid = errors.New("invalid configuration")

const (
	DefaultWidth       = 420
	DefaultHeight      = 640
	DefaultMaxDigits   = 16
	DefaultTimeLayout  = "15:04:05"
	DefaultDateLayout  = "Monday, 2 January 2006"
	DefaultAnimationMs = 200
)

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Log        LogConfig        `toml:"log"`
	Calculator CalculatorConfig `toml:"calculator"`
	Clock      ClockConfig      `toml:"clock"`
	Menu       MenuConfig       `toml:"menu"`
}

type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

type CalculatorConfig struct {
	// MaxDigits caps entry length; 0 leaves it unbounded
	MaxDigits int `toml:"max_digits"`
}

type ClockConfig struct {
	TimeLayout string `toml:"time_layout"`
	DateLayout string `toml:"date_layout"`
}

type MenuConfig struct {
	AnimationMs int `toml:"animation_ms"`
}

func Default() Config {
	return Config{
		Window:     WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
		Log:        LogConfig{Level: "info"},
		Calculator: CalculatorConfig{MaxDigits: DefaultMaxDigits},
		Clock:      ClockConfig{TimeLayout: DefaultTimeLayout, DateLayout: DefaultDateLayout},
		Menu:       MenuConfig{AnimationMs: DefaultAnimationMs},
	}
}

// Path returns the configuration file location from the environment, or "" if unset
func Path() string {
	return os.Getenv("POCKETCALC_CONFIG")
}

// Load decodes path over the defaults and applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Default(), err
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	switch os.Getenv("LOG_LEVEL") {
	case "debug", "info", "warn", "error":
		cfg.Log.Level = os.Getenv("LOG_LEVEL")
	default:
		if os.Getenv("DEBUG") == "1" {
			cfg.Log.Level = "debug"
		}
	}

	if os.Getenv("POCKETCALC_JSON_LOGS") == "true" {
		cfg.Log.JSON = true
	}

	if v := os.Getenv("POCKETCALC_MAX_DIGITS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("POCKETCALC_MAX_DIGITS=%q: %w", v, ErrInvalid)
		}
		cfg.Calculator.MaxDigits = n
	}

	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %.0fx%.0f: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	}
	if c.Calculator.MaxDigits < 0 {
		return fmt.Errorf("max_digits %d: %w", c.Calculator.MaxDigits, ErrInvalid)
	}
	if c.Clock.TimeLayout == "" || c.Clock.DateLayout == "" {
		return fmt.Errorf("empty clock layout: %w", ErrInvalid)
	}
	if c.Menu.AnimationMs < 0 {
		return fmt.Errorf("animation_ms %d: %w", c.Menu.AnimationMs, ErrInvalid)
	}
	return nil
}
