// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Scene presets. The landing preset is the static page embellishment, the
// interactive preset adds orbit controls and renders spheres as wireframes.
const (
	PresetLanding     = "landing"
	PresetInteractive = "interactive"
)

// Sphere layouts.
const (
	// LayoutAxial places each sphere pair on its pivot's rotation axis.
	LayoutAxial = "axial"
	// LayoutOrbital places each pair perpendicular to the rotation axis so
	// the spheres sweep circles around the origin.
	LayoutOrbital = "orbital"
)

// Background modes.
const (
	BackgroundScreen   = "screen"
	BackgroundEquirect = "equirect"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   SceneConfig   `yaml:"scene"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"` // MSAA, 0 disables
}

// SceneConfig holds scene composition and animation settings.
type SceneConfig struct {
	Preset        string  `yaml:"preset"`
	Layout        string  `yaml:"layout"`
	Wireframe     bool    `yaml:"wireframe"`
	OrbitControls bool    `yaml:"orbit_controls"`
	OrbitPan      bool    `yaml:"orbit_pan"`
	RotationStep  float32 `yaml:"rotation_step"` // radians per frame
	SphereOffset  float32 `yaml:"sphere_offset"`
	TitleText     string  `yaml:"title_text"`
}

// AssetsConfig holds asset file paths.
type AssetsConfig struct {
	Background     string `yaml:"background"`
	BackgroundMode string `yaml:"background_mode"`
	Dir            string `yaml:"dir"`  // searched before ./assets
	Font           string `yaml:"font"` // empty selects the embedded face
	ScreenshotDir  string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the landing preset applied.
func Default() *Config {
	cfg := &Config{
		Window: WindowConfig{
			Title:   "Tetsuo",
			Width:   1280,
			Height:  720,
			VSync:   true,
			Samples: 4,
		},
		Scene: SceneConfig{
			Layout:       LayoutAxial,
			RotationStep: 0.01,
			SphereOffset: 80,
			TitleText:    "Tetsuo",
		},
		Assets: AssetsConfig{
			Background:     "stars.jpg",
			BackgroundMode: BackgroundScreen,
			ScreenshotDir:  "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
	ApplyPreset(cfg, PresetLanding)
	return cfg
}

// ApplyPreset sets the preset-controlled fields. Unknown presets are left
// for Validate to report.
func ApplyPreset(cfg *Config, preset string) {
	cfg.Scene.Preset = preset
	switch preset {
	case PresetLanding:
		cfg.Scene.Wireframe = false
		cfg.Scene.OrbitControls = false
	case PresetInteractive:
		cfg.Scene.Wireframe = true
		cfg.Scene.OrbitControls = true
	}
}

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	switch c.Scene.Preset {
	case PresetLanding, PresetInteractive:
	default:
		errs = append(errs, fmt.Errorf("unknown preset %q", c.Scene.Preset))
	}
	switch c.Scene.Layout {
	case LayoutAxial, LayoutOrbital:
	default:
		errs = append(errs, fmt.Errorf("unknown layout %q", c.Scene.Layout))
	}
	switch c.Assets.BackgroundMode {
	case BackgroundScreen, BackgroundEquirect:
	default:
		errs = append(errs, fmt.Errorf("unknown background mode %q", c.Assets.BackgroundMode))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Samples < 0 {
		errs = append(errs, fmt.Errorf("samples %d must not be negative", c.Window.Samples))
	}
	if c.Scene.SphereOffset < 80 || c.Scene.SphereOffset > 100 {
		errs = append(errs, fmt.Errorf("sphere offset %.1f outside 80..100", c.Scene.SphereOffset))
	}
	if c.Scene.RotationStep <= 0 {
		errs = append(errs, fmt.Errorf("rotation step %v must be positive", c.Scene.RotationStep))
	}
	if c.Scene.TitleText == "" {
		errs = append(errs, errors.New("title text is empty"))
	}
	return errors.Join(errs...)
}
