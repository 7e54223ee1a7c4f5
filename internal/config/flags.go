package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPreset     = flag.String("preset", "", "Scene preset: landing or interactive")
	flagLayout     = flag.String("layout", "", "Sphere layout: axial or orbital")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagBackground = flag.String("background", "", "Background image path")
	flagFont       = flag.String("font", "", "TrueType font path for the title")
	flagAssets     = flag.String("assets", "", "Extra asset directory, searched first")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the path given via --save-config, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config. The preset flag is
// applied first so that individual flags still win over it.
func applyFlags(cfg *Config) {
	if *flagPreset != "" {
		ApplyPreset(cfg, *flagPreset)
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLayout != "" {
		cfg.Scene.Layout = *flagLayout
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagBackground != "" {
		cfg.Assets.Background = *flagBackground
	}
	if *flagFont != "" {
		cfg.Assets.Font = *flagFont
	}
	if *flagAssets != "" {
		cfg.Assets.Dir = *flagAssets
	}
}
