package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"flycam/internal/logger"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Controller ControllerConfig `yaml:"controller"`
	Input      InputConfig      `yaml:"input"`
	Scene      string           `yaml:"scene"`
	Logging    logger.Config    `yaml:"logging"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
	HighDPI   bool   `yaml:"high_dpi"`
}

// Controller tunable ranges. The in-game tuning sliders use the same bounds.
const (
	MinSpeed            = 0.5
	MaxSpeed            = 50
	MaxMouseSensitivity = 10
)

// ControllerConfig holds the fly controller's tunables.
type ControllerConfig struct {
	Speed            float32 `yaml:"speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

type InputConfig struct {
	MouseScale float32 `yaml:"mouse_scale"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "flycam",
			TargetFPS: 120,
			HighDPI:   true,
		},
		Controller: ControllerConfig{
			Speed:            5,
			MouseSensitivity: 2,
		},
		Input: InputConfig{
			MouseScale: 0.1,
		},
		Scene:   "assets/scenes/main.json",
		Logging: logger.DefaultConfig(),
	}
}

// Load reads path over Default. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default.
func LoadOrDefault(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Controller.Speed < MinSpeed || c.Controller.Speed > MaxSpeed:
		return fmt.Errorf("%w: controller.speed must be in [%v, %v], got %v", ErrInvalid, MinSpeed, MaxSpeed, c.Controller.Speed)
	case c.Controller.MouseSensitivity < 0 || c.Controller.MouseSensitivity > MaxMouseSensitivity:
		return fmt.Errorf("%w: controller.mouse_sensitivity must be in [0, %v], got %v", ErrInvalid, MaxMouseSensitivity, c.Controller.MouseSensitivity)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Input.MouseScale <= 0:
		return fmt.Errorf("%w: input.mouse_scale must be positive, got %v", ErrInvalid, c.Input.MouseScale)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
