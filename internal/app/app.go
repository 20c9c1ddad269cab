// Package app runs the render loop: input, camera, scene update, upload, draw.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/marcher/internal/config"
	"github.com/Faultbox/marcher/internal/engine/camera"
	"github.com/Faultbox/marcher/internal/engine/input"
	"github.com/Faultbox/marcher/internal/engine/lighting"
	"github.com/Faultbox/marcher/internal/engine/picking"
	"github.com/Faultbox/marcher/internal/engine/renderer"
	"github.com/Faultbox/marcher/internal/engine/window"
	"github.com/Faultbox/marcher/internal/logger"
	"github.com/Faultbox/marcher/internal/scene"
)

// Title is the window title.
const Title = "marcher"

// App is the running viewer.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings input.Bindings

	camera     *camera.Camera
	controller camera.Controller
	moves      []camera.Direction
	sun        lighting.Sun

	scene   *scene.Scene
	watcher *scene.Watcher
	words   []uint32
	start   time.Time
}

// New loads the scene, opens the window and creates the renderer.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	var err error
	if a.bindings, err = input.ParseBindings(cfg.Controls.Bindings(), cfg.Controls.Sprint); err != nil {
		return nil, fmt.Errorf("controls: %w", err)
	}

	if err := a.loadScene(); err != nil {
		return nil, err
	}

	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window, since the OpenGL context must exist.
	fbWidth, fbHeight := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:         fbWidth,
		Height:        fbHeight,
		FOVDegrees:    cfg.Graphics.FOVDegrees,
		Near:          cfg.Graphics.Near,
		Far:           cfg.Graphics.Far,
		SSBOSize:      cfg.Renderer.SSBOSize,
		RenderScale:   cfg.Renderer.RenderScale,
		ScreenshotDir: cfg.Renderer.ScreenshotDir,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.window.CaptureMouse(true)

	cc := cfg.Camera
	a.camera = camera.New(mgl32.Vec3(cc.Position), mgl32.Vec3{0, 1, 0}, mgl32.Vec3{cc.Yaw, cc.Pitch, 0})
	a.camera.Speed = cc.Speed
	a.camera.Sensitivity = cc.Sensitivity
	a.controller = camera.Controller{
		SprintMultiplier: cc.SprintMultiplier,
		ConstrainPitch:   cc.ConstrainPitch,
		InvertY:          cc.InvertY,
	}
	a.sun = lighting.Sun{Azimuth: cfg.Renderer.SunAzimuth, Elevation: cfg.Renderer.SunElevation}

	a.log.Info("initialized", zap.Int("records", scene.RecordCount(a.scene.Encode())))
	return a, nil
}

func (a *App) loadScene() error {
	path := a.cfg.Scene.Path
	if path == "" {
		a.scene = scene.Default()
		a.log.Info("using built-in scene")
		return nil
	}

	s, err := scene.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}
	a.scene = s
	a.log.Info("scene loaded", zap.String("path", path), zap.Int("objects", len(s.Objects())))

	if a.cfg.Scene.Watch {
		if a.watcher, err = scene.Watch(path, scene.DefaultDebounce); err != nil {
			return fmt.Errorf("watching scene: %w", err)
		}
	}
	return nil
}

// Run starts the frame loop and returns when the window is closed or
// Escape is pressed.
func (a *App) Run() error {
	a.running = true
	a.start = time.Now()

	lastTime := a.start
	frameCount := 0
	fpsTimer := a.start

	a.log.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		screenshot := false
		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.renderer.Resize(a.window.DrawableSize())
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					a.running = false
				case sdl.SCANCODE_F12:
					screenshot = true
				}
			case input.EventMouseDown:
				if event.Button == sdl.BUTTON_LEFT {
					a.pick()
				}
			}
		}
		if !a.running {
			break
		}

		a.update(dt, float32(now.Sub(a.start).Seconds()))
		a.render()

		if screenshot {
			if _, err := a.renderer.Screenshot(); err != nil {
				a.log.Error("screenshot failed", zap.Error(err))
			}
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// update advances the camera and the scene.
func (a *App) update(dt, elapsed float32) {
	dx, dy := a.input.MouseDelta()
	a.moves = a.bindings.Held(a.input, a.moves[:0])
	a.controller.Apply(a.camera, camera.Frame{
		Moves:     a.moves,
		Sprint:    a.bindings.Sprinting(a.input),
		MouseDX:   dx,
		MouseDY:   dy,
		DeltaTime: dt,
	})

	if a.watcher != nil {
		select {
		case s := <-a.watcher.Scenes():
			a.scene = s
		default:
		}
	}

	if a.cfg.Scene.Animate {
		a.scene.Animate(elapsed)
	}
}

// render encodes the scene, uploads it and draws.
func (a *App) render() {
	a.words = a.scene.EncodeInto(a.words)
	count := a.renderer.UploadScene(a.words)

	a.renderer.Draw(renderer.FrameUniforms{
		CameraPosition: a.camera.Position(),
		View:           a.camera.ViewMatrix(),
		Projection:     a.renderer.Projection(),
		Time:           float32(time.Since(a.start).Seconds()),
		ObjectCount:    count,
		LightDirection: a.sun.Direction(),
	})
}

// pick logs the object under the crosshair. The mouse is captured, so the
// crosshair is the screen center. It tests the records drawn last frame.
func (a *App) pick() {
	drawn, _ := scene.Fit(a.words, a.cfg.Renderer.SSBOSize)
	records, err := scene.DecodeRecords(drawn)
	if err != nil {
		a.log.Warn("pick: bad scene buffer", zap.Error(err))
		return
	}

	w, h := a.window.DrawableSize()
	inv := a.renderer.Projection().Mul4(a.camera.ViewMatrix()).Inv()
	ray := picking.ScreenToRay(float32(w)/2, float32(h)/2, float32(w), float32(h), inv)

	hit, ok := picking.Pick(ray, records)
	if !ok {
		a.log.Info("pick: nothing under crosshair")
		return
	}
	name, _ := a.scene.Owner(hit.Index)
	a.log.Info("pick",
		zap.Int("record", hit.Index),
		zap.String("object", name),
		zap.Stringer("kind", hit.Kind),
		zap.Float32("distance", hit.Distance),
		zap.Float32s("point", hit.Point[:]),
	)
}

// Close releases the watcher, renderer and window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing scene watcher", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
