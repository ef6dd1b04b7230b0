// Package game runs the interactive garden: window, input, camera and
// the frame loop.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/jerieldones/valentine-garden/internal/config"
	"github.com/jerieldones/valentine-garden/internal/engine/audio"
	"github.com/jerieldones/valentine-garden/internal/engine/camera"
	"github.com/jerieldones/valentine-garden/internal/engine/input"
	"github.com/jerieldones/valentine-garden/internal/engine/picking"
	"github.com/jerieldones/valentine-garden/internal/engine/scene"
	"github.com/jerieldones/valentine-garden/internal/engine/window"
	"github.com/jerieldones/valentine-garden/internal/garden"
	"github.com/jerieldones/valentine-garden/internal/logger"
)

const windowTitle = "Valentine Garden"

// Game is the main application instance.
type Game struct {
	cfg     *config.Config
	running bool

	window  *window.Window
	input   *input.Input
	camera  *camera.OrbitCamera
	scene   *scene.Scene
	audio   *audio.Manager
	trigger *garden.TapTrigger

	dragging bool
	elapsed  float64
}

// New creates the window, the GL context and all scene content.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{cfg: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		g.window.Close()
		return nil, fmt.Errorf("init OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	g.scene, err = scene.New(*cfg, logger.Log)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("build scene: %w", err)
	}

	// Audio is decorative; run silent if the device is unavailable
	g.audio = audio.New()
	if err := g.audio.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	g.audio.SetMasterVolume(float64(cfg.Audio.MasterVolume))
	g.audio.SetMuted(cfg.Audio.Muted)

	g.input = input.New()
	g.camera = camera.NewOrbitCamera()
	g.trigger = garden.NewTapTrigger(cfg.Garden.TapCooldown, g.onRoseTapped)

	logger.Info("game initialized")
	return g, nil
}

// onRoseTapped fires exactly once per session, on the first accepted tap
// that hits the rose.
func (g *Game) onRoseTapped() {
	logger.Info("rose tapped", zap.Float64("elapsed", g.elapsed))
	g.scene.Pop(g.elapsed)
	g.window.SetTitle(windowTitle + " — for you ♥")
	if g.audio.IsInitialized() {
		if err := g.audio.Chime(); err != nil {
			logger.Warn("chime failed", zap.Error(err))
		}
	}
}

// Run starts the main loop. Frame order is fixed: read time, process
// input, update entities, render, swap.
func (g *Game) Run() error {
	g.running = true
	start := time.Now()
	lastTime := start

	logger.Info("starting frame loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		g.elapsed = now.Sub(start).Seconds()

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.scene.Update(g.elapsed, dt)
		g.render()
		g.window.SwapBuffers()
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventQuit:
			g.running = false

		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_ESCAPE {
				g.running = false
			}

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				g.dragging = true
				g.pointerDown(event.MouseX, event.MouseY)
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				g.dragging = false
			}

		case input.EventMouseMove:
			if g.dragging {
				g.camera.HandleDrag(float32(event.RelX), float32(event.RelY))
			}

		case input.EventMouseWheel:
			g.camera.HandleZoom(float32(event.WheelY))
		}
	}
}

// pointerDown casts a ray through the pointer and feeds the tap trigger.
func (g *Game) pointerDown(mouseX, mouseY int) {
	w, h := g.window.GetSize()
	if w == 0 || h == 0 {
		return
	}

	view := g.camera.ViewMatrix()
	proj := g.camera.ProjectionMatrix(w, h)
	ray := picking.ScreenToRay(float32(mouseX), float32(mouseY),
		float32(w), float32(h), proj.Mul(view).Inverse())

	g.trigger.PointerDown(g.elapsed, ray.Origin, ray.Direction, g.scene.RoseCapsule())
}

func (g *Game) render() {
	w, h := g.window.GetDrawableSize()
	gl.Viewport(0, 0, int32(w), int32(h))

	view := g.camera.ViewMatrix()
	proj := g.camera.ProjectionMatrix(w, h)
	g.scene.Render(view, proj, g.camera.Position(), w, h)
}

// Close releases all resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.audio != nil {
		g.audio.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
