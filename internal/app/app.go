// Package app owns the window, renderer and scene, and runs the frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tetsuo/internal/assets"
	"github.com/Faultbox/tetsuo/internal/config"
	"github.com/Faultbox/tetsuo/internal/engine/input"
	"github.com/Faultbox/tetsuo/internal/engine/renderer"
	"github.com/Faultbox/tetsuo/internal/engine/scene"
	"github.com/Faultbox/tetsuo/internal/engine/screenshot"
	"github.com/Faultbox/tetsuo/internal/engine/text"
	"github.com/Faultbox/tetsuo/internal/engine/texture"
	"github.com/Faultbox/tetsuo/internal/engine/window"
	"github.com/Faultbox/tetsuo/internal/logger"
	"github.com/Faultbox/tetsuo/internal/tetsuo"
)

// AssetDir is searched for asset files before the working directory.
const AssetDir = "assets"

// App is the single owner of everything the landing scene needs at runtime.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager

	comp     *tetsuo.Composition
	animator *tetsuo.Animator
	viewport *tetsuo.Viewport

	// Pointer is the last pointer position in normalised device
	// coordinates. Only the hover log reads it.
	Pointer mgl32.Vec2
	hovered string

	shots       *screenshot.Capture
	wantCapture bool

	running bool
}

// New opens the window, starts the asset loads and composes the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:    cfg,
		log:    logger.Named("app"),
		input:  input.New(),
		assets: assets.ManagerFor(AssetDir, cfg.Assets),
		shots:  screenshot.New(cfg.Assets.ScreenshotDir, "tetsuo"),
	}
	a.log.Info("initializing",
		zap.String("preset", cfg.Scene.Preset),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	loads := tetsuo.Loads{
		Title: tetsuo.BuildTitle(
			a.assets.LoadFontAsync(cfg.Assets.Font),
			cfg.Scene.TitleText,
			text.DefaultOptions(),
		),
		BackgroundMode: backgroundMode(cfg.Assets.BackgroundMode),
	}
	if cfg.Assets.Background != "" {
		loads.Background = tetsuo.NewFuture(a.assets.LoadImageAsync(cfg.Assets.Background, texture.DefaultMaxSize))
	}

	a.comp = tetsuo.Compose(tetsuo.OptionsFromConfig(cfg.Scene), float32(w)/float32(h), loads)
	a.animator = tetsuo.NewAnimator(a.comp, cfg.Scene.RotationStep)
	a.viewport = tetsuo.NewViewport(a.comp.Camera, a.renderer, cfg.Scene.OrbitControls)
	if a.viewport.Controls != nil {
		a.viewport.Controls.EnablePan = cfg.Scene.OrbitPan
	}
	a.viewport.Resize(w, h)

	a.log.Info("initialized")
	return a, nil
}

func backgroundMode(name string) scene.BackgroundMode {
	if name == config.BackgroundEquirect {
		return scene.BackgroundEquirect
	}
	return scene.BackgroundScreen
}

// Run drives the frame loop until the window is closed or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	frames := 0
	fpsTimer := time.Now()
	ready := a.comp.Ready()

	a.log.Info("starting frame loop")
	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		a.viewport.Update()
		a.comp.Poll()
		if ready != nil {
			select {
			case <-ready:
				a.log.Info("scene ready", zap.Uint64("frame", a.animator.Frames()))
				ready = nil
			default:
			}
		}

		a.animator.Step()
		a.renderer.Render(a.comp.Scene, a.comp.Camera)
		if a.wantCapture {
			a.capture()
			a.wantCapture = false
		}
		a.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frames))
			frames = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (a *App) handleEvents() {
	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			// Events carry window coordinates; the surface needs pixels.
			w, h := a.window.DrawableSize()
			if a.viewport.Resize(w, h) {
				a.log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
			}
		case input.EventMouseMove:
			ww, wh := a.window.GetSize()
			a.Pointer = tetsuo.NormalizePointer(ev.MouseX, ev.MouseY, ww, wh)
			a.hover()
			if ev.Dragging(input.ButtonLeft) {
				a.viewport.Drag(float32(ev.DeltaX), float32(ev.DeltaY))
			} else if ev.Dragging(input.ButtonRight) {
				a.viewport.Pan(float32(ev.DeltaX), float32(ev.DeltaY))
			}
		case input.EventMouseWheel:
			a.viewport.Zoom(ev.Wheel)
		case input.EventKeyDown:
			if ev.Key == sdl.SCANCODE_F12 {
				a.wantCapture = true
			}
		}
	}
}

func (a *App) hover() {
	name := a.comp.Hover(a.Pointer)
	if name != a.hovered {
		a.hovered = name
		a.log.Debug("hover", zap.String("object", name))
	}
}

func (a *App) capture() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.SavePixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU and window resources.
func (a *App) Close() {
	a.log.Info("closing")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	a.assets.Close()
}
