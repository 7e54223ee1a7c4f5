package config

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Scene.Preset != PresetLanding {
		t.Errorf("expected preset %q, got %q", PresetLanding, cfg.Scene.Preset)
	}
	if cfg.Scene.Layout != LayoutAxial {
		t.Errorf("expected layout %q, got %q", LayoutAxial, cfg.Scene.Layout)
	}
	if cfg.Scene.Wireframe || cfg.Scene.OrbitControls {
		t.Error("landing preset should be solid with no orbit controls")
	}
	if cfg.Scene.RotationStep != 0.01 {
		t.Errorf("expected rotation step 0.01, got %v", cfg.Scene.RotationStep)
	}
	if cfg.Scene.SphereOffset != 80 {
		t.Errorf("expected sphere offset 80, got %v", cfg.Scene.SphereOffset)
	}
	if cfg.Scene.TitleText != "Tetsuo" {
		t.Errorf("expected title text Tetsuo, got %q", cfg.Scene.TitleText)
	}

	if cfg.Assets.Background != "stars.jpg" {
		t.Errorf("expected background stars.jpg, got %s", cfg.Assets.Background)
	}
	if cfg.Assets.Font != "" {
		t.Errorf("expected embedded font by default, got %s", cfg.Assets.Font)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(cfg, PresetInteractive)
	if !cfg.Scene.Wireframe {
		t.Error("interactive preset should render wireframe spheres")
	}
	if !cfg.Scene.OrbitControls {
		t.Error("interactive preset should enable orbit controls")
	}

	ApplyPreset(cfg, PresetLanding)
	if cfg.Scene.Wireframe || cfg.Scene.OrbitControls {
		t.Error("landing preset should reset wireframe and orbit controls")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown preset", func(c *Config) { c.Scene.Preset = "demo" }},
		{"unknown layout", func(c *Config) { c.Scene.Layout = "spiral" }},
		{"unknown background mode", func(c *Config) { c.Assets.BackgroundMode = "cube" }},
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative samples", func(c *Config) { c.Window.Samples = -1 }},
		{"offset too small", func(c *Config) { c.Scene.SphereOffset = 10 }},
		{"offset too large", func(c *Config) { c.Scene.SphereOffset = 120 }},
		{"negative step", func(c *Config) { c.Scene.RotationStep = -0.01 }},
		{"empty title", func(c *Config) { c.Scene.TitleText = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  preset: interactive
  layout: orbital
  wireframe: false
  orbit_pan: true
  sphere_offset: 90

assets:
  background: "space.png"
  background_mode: equirect
  font: "fonts/bold.ttf"

logging:
  level: "debug"
  log_file: "tetsuo.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Scene.Preset != PresetInteractive {
		t.Errorf("expected interactive preset, got %s", cfg.Scene.Preset)
	}
	if !cfg.Scene.OrbitControls {
		t.Error("expected orbit controls from the interactive preset")
	}
	// Explicit key wins over the preset.
	if cfg.Scene.Wireframe {
		t.Error("expected wireframe false from the file to override the preset")
	}
	if cfg.Scene.Layout != LayoutOrbital {
		t.Errorf("expected orbital layout, got %s", cfg.Scene.Layout)
	}
	if !cfg.Scene.OrbitPan {
		t.Error("expected orbit pan from the file")
	}
	if cfg.Scene.SphereOffset != 90 {
		t.Errorf("expected sphere offset 90, got %v", cfg.Scene.SphereOffset)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Scene.RotationStep != 0.01 {
		t.Errorf("expected default rotation step, got %v", cfg.Scene.RotationStep)
	}

	if cfg.Assets.Background != "space.png" {
		t.Errorf("expected background space.png, got %s", cfg.Assets.Background)
	}
	if cfg.Assets.BackgroundMode != BackgroundEquirect {
		t.Errorf("expected equirect background, got %s", cfg.Assets.BackgroundMode)
	}
	if cfg.Assets.Font != "fonts/bold.ttf" {
		t.Errorf("expected font fonts/bold.ttf, got %s", cfg.Assets.Font)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "tetsuo.log" {
		t.Errorf("expected log file 'tetsuo.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("config.yaml", []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "preset flag",
			setup: func() { *flagPreset = PresetInteractive },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Scene.OrbitControls || !cfg.Scene.Wireframe {
					t.Error("expected interactive preset to be applied")
				}
			},
			teardown: func() { *flagPreset = "" },
		},
		{
			name:  "layout flag",
			setup: func() { *flagLayout = LayoutOrbital },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Layout != LayoutOrbital {
					t.Errorf("expected orbital layout, got %s", cfg.Scene.Layout)
				}
			},
			teardown: func() { *flagLayout = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "asset flags",
			setup: func() {
				*flagBackground = "nebula.png"
				*flagFont = "title.ttf"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.Background != "nebula.png" {
					t.Errorf("expected background nebula.png, got %s", cfg.Assets.Background)
				}
				if cfg.Assets.Font != "title.ttf" {
					t.Errorf("expected font title.ttf, got %s", cfg.Assets.Font)
				}
			},
			teardown: func() {
				*flagBackground = ""
				*flagFont = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  layout: spiral\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject an unknown layout")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	ApplyPreset(cfg, PresetInteractive)
	cfg.Scene.Layout = LayoutOrbital
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Scene != cfg.Scene {
		t.Errorf("scene config changed after round trip: got %+v, want %+v", loaded.Scene, cfg.Scene)
	}
}

func TestSourcesAreFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		formatted, err := format.Source(src)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.Equal(src, formatted) {
			t.Errorf("%s is not gofmt-formatted", name)
		}
	}
}
