// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Scene    SceneConfig    `yaml:"scene"`
	Renderer RendererConfig `yaml:"renderer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// CameraConfig holds the starting camera state and look/move tuning.
type CameraConfig struct {
	Position         [3]float32 `yaml:"position"`
	Yaw              float32    `yaml:"yaw"`   // degrees
	Pitch            float32    `yaml:"pitch"` // degrees
	Speed            float32    `yaml:"speed"`
	Sensitivity      float32    `yaml:"sensitivity"`
	SprintMultiplier float32    `yaml:"sprint_multiplier"`
	ConstrainPitch   bool       `yaml:"constrain_pitch"`
	InvertY          bool       `yaml:"invert_y"`
}

// ControlsConfig maps actions to SDL key names ("W", "Space", "Left Shift").
type ControlsConfig struct {
	Forward  string `yaml:"forward"`
	Backward string `yaml:"backward"`
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Up       string `yaml:"up"`
	Down     string `yaml:"down"`
	Sprint   string `yaml:"sprint"`
}

// SceneConfig selects the scene to render.
type SceneConfig struct {
	Path    string `yaml:"path"`    // YAML or TOML scene file, empty for the built-in demo
	Watch   bool   `yaml:"watch"`   // reload Path when it changes
	Animate bool   `yaml:"animate"` // run scene animations
}

// RendererConfig holds ray-marcher settings.
type RendererConfig struct {
	SSBOSize      int     `yaml:"ssbo_size"`   // words the shader reads from the scene buffer
	RenderScale   float32 `yaml:"render_scale"` // offscreen resolution relative to the window, 1 draws directly
	SunAzimuth    float32 `yaml:"sun_azimuth"`   // degrees from +Z toward +X
	SunElevation  float32 `yaml:"sun_elevation"` // degrees above the horizon
	ScreenshotDir string  `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 45,
			Near:       0.1,
			Far:        100,
		},
		Camera: CameraConfig{
			Position:         [3]float32{0, 2, 8},
			Yaw:              -90,
			Pitch:            0,
			Speed:            2.5,
			Sensitivity:      0.1,
			SprintMultiplier: 2,
			ConstrainPitch:   true,
		},
		Controls: ControlsConfig{
			Forward:  "W",
			Backward: "S",
			Left:     "A",
			Right:    "D",
			Up:       "Space",
			Down:     "C",
			Sprint:   "Left Shift",
		},
		Scene: SceneConfig{
			Animate: true,
		},
		Renderer: RendererConfig{
			SSBOSize:      512,
			RenderScale:   1,
			SunAzimuth:    55,
			SunElevation:  50,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Bindings returns the movement bindings keyed by direction name, as
// accepted by camera.ParseDirection.
func (c ControlsConfig) Bindings() map[string]string {
	return map[string]string{
		"forward":  c.Forward,
		"backward": c.Backward,
		"left":     c.Left,
		"right":    c.Right,
		"up":       c.Up,
		"down":     c.Down,
	}
}
