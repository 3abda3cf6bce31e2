package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"warp-scene/core"
	"warp-scene/logger"
	"warp-scene/motion"
)

// DefaultPath is read when no --config flag is given. A missing file there
// means built-in defaults.
const DefaultPath = "warpscene.yaml"

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Model     ModelConfig     `yaml:"model"`
	Motion    motion.Params   `yaml:"motion"`
	Camera    CameraConfig    `yaml:"camera"`
	Look      LookConfig      `yaml:"look"`
	Palette   []string        `yaml:"palette"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Logging   logger.Config   `yaml:"logging"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type ModelConfig struct {
	Path string `yaml:"path"`
}

type CameraConfig struct {
	FOVDegrees     float32 `yaml:"fov_degrees"`
	Near           float32 `yaml:"near"`
	Far            float32 `yaml:"far"`
	FollowDistance float32 `yaml:"follow_distance"`
	SpinPerFrame   float32 `yaml:"spin_per_frame"`
}

type LookConfig struct {
	Sensitivity float32 `yaml:"sensitivity"`
}

type StarfieldConfig struct {
	Count  int     `yaml:"count"`
	Extent float32 `yaml:"extent"`
	Size   float32 `yaml:"size"`
	Seed   int64   `yaml:"seed"` // 0 picks a time-based seed
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Warp Scene",
			VSync:  true,
		},
		Model:  ModelConfig{Path: "assets/model.glb"},
		Motion: motion.DefaultParams(),
		Camera: CameraConfig{
			FOVDegrees:     45,
			Near:           0.1,
			Far:            500,
			FollowDistance: 10,
			SpinPerFrame:   0.005,
		},
		Look: LookConfig{Sensitivity: 0.002},
		Palette: []string{
			"#00ff00",
			"#ff0000",
			"#0000ff",
			"#ffff00",
			"#ff00ff",
		},
		Starfield: StarfieldConfig{
			Count:  5000,
			Extent: 200,
			Size:   0.1,
		},
		Logging: logger.Config{Level: "info", Format: "console"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load, except that a missing file is not an
// error unless the path was given explicitly.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Model.Path == "" {
		return errors.New("model.path is required")
	}
	if err := c.Motion.Validate(); err != nil {
		return fmt.Errorf("motion: %w", err)
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		return fmt.Errorf("camera.fov_degrees must be in (0, 180), got %v", c.Camera.FOVDegrees)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes must satisfy 0 < near < far, got %v..%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FollowDistance <= 0 {
		return fmt.Errorf("camera.follow_distance must be > 0, got %v", c.Camera.FollowDistance)
	}
	if c.Look.Sensitivity <= 0 {
		return fmt.Errorf("look.sensitivity must be > 0, got %v", c.Look.Sensitivity)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	if c.Starfield.Count < 0 || c.Starfield.Extent <= 0 || c.Starfield.Size <= 0 {
		return fmt.Errorf("starfield: count must be >= 0, extent and size > 0")
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "text", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, text, json", c.Logging.Format)
	}
	return nil
}

// Colors parses the palette entries.
func (c *Config) Colors() ([]core.Color, error) {
	if len(c.Palette) == 0 {
		return nil, errors.New("palette must contain at least one color")
	}
	colors := make([]core.Color, len(c.Palette))
	for i, s := range c.Palette {
		col, err := core.ParseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		colors[i] = col
	}
	return colors, nil
}
