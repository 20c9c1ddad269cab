// Package renderer draws a packed scene buffer with the ray-march shader.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/marcher/internal/engine/camera"
	"github.com/Faultbox/marcher/internal/engine/debug"
	"github.com/Faultbox/marcher/internal/engine/framebuffer"
	"github.com/Faultbox/marcher/internal/engine/renderer/shaders"
	"github.com/Faultbox/marcher/internal/engine/shader"
	"github.com/Faultbox/marcher/internal/logger"
	"github.com/Faultbox/marcher/internal/scene"
)

// sceneBinding is the shader storage binding point of the scene buffer.
const sceneBinding = 0

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOVDegrees float32
	Near       float32
	Far        float32

	// SSBOSize is the number of scene words the shader reads.
	SSBOSize int

	// RenderScale sizes the offscreen target relative to the window.
	// At 1 the shader draws straight into the default framebuffer.
	RenderScale float32

	ScreenshotDir string
}

// FrameUniforms are the per-frame shader inputs.
type FrameUniforms struct {
	CameraPosition mgl32.Vec3
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	Time           float32
	ObjectCount    int
	LightDirection mgl32.Vec3
}

// Renderer owns every GL object used to draw a frame. All methods must be
// called on the thread that owns the GL context.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program

	quadVAO uint32
	quadVBO uint32

	sceneSSBO     uint32
	sceneCapacity int // bytes allocated for sceneSSBO
	objectCount   int

	offscreen *framebuffer.Framebuffer // nil when RenderScale is 1

	screenshots *debug.Screenshots
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:      cfg,
		log:         logger.Named("renderer"),
		screenshots: debug.NewScreenshots(cfg.ScreenshotDir, "marcher"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	if major < 4 || (major == 4 && minor < 3) {
		return nil, fmt.Errorf("OpenGL 4.3 required for shader storage buffers, got %d.%d", major, minor)
	}

	vert, frag, err := shaders.Raymarch(cfg.SSBOSize)
	if err != nil {
		return nil, err
	}
	if r.program, err = shader.Compile(vert, frag); err != nil {
		return nil, fmt.Errorf("ray-march program: %w", err)
	}

	r.createQuad()
	gl.GenBuffers(1, &r.sceneSSBO)

	if r.config.RenderScale <= 0 {
		r.config.RenderScale = 1
	}
	if r.config.RenderScale != 1 {
		w, h := r.scaledSize(cfg.Width, cfg.Height)
		if r.offscreen, err = framebuffer.New(w, h); err != nil {
			return nil, fmt.Errorf("offscreen target: %w", err)
		}
		r.log.Info("rendering offscreen", zap.Float32("scale", r.config.RenderScale))
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close deletes the GL objects.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.offscreen != nil {
		r.offscreen.Destroy()
		r.offscreen = nil
	}
	if r.sceneSSBO != 0 {
		gl.DeleteBuffers(1, &r.sceneSSBO)
		r.sceneSSBO = 0
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
		r.quadVAO = 0
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
		r.quadVBO = 0
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize sets the viewport to the window's drawable size in pixels and
// resizes the offscreen target to match.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	if r.offscreen != nil {
		r.offscreen.Resize(r.scaledSize(width, height))
	}
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Projection returns the projection matrix for the current viewport.
func (r *Renderer) Projection() mgl32.Mat4 {
	return camera.Projection(r.config.FOVDegrees, r.config.Width, r.config.Height, r.config.Near, r.config.Far)
}

// UploadScene copies words into the scene buffer and binds it. The buffer
// grows when needed and never shrinks. Words past the shader's SSBO_SIZE
// are dropped in whole records. It returns the number of records uploaded,
// which is the objectCount to draw with.
func (r *Renderer) UploadScene(words []uint32) int {
	words, cut := scene.Fit(words, r.config.SSBOSize)
	if cut {
		r.log.Warn("scene exceeds shader buffer, dropping records",
			zap.Int("ssbo_size", r.config.SSBOSize),
			zap.Int("uploaded", scene.RecordCount(words)),
		)
	}

	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, r.sceneSSBO)
	size := len(words) * 4
	if size > r.sceneCapacity {
		gl.BufferData(gl.SHADER_STORAGE_BUFFER, size, nil, gl.DYNAMIC_DRAW)
		r.sceneCapacity = size
		r.log.Debug("scene buffer resized", zap.Int("bytes", size))
	}
	if size > 0 {
		gl.BufferSubData(gl.SHADER_STORAGE_BUFFER, 0, size, gl.Ptr(words))
	}
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, sceneBinding, r.sceneSSBO)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, 0)

	r.objectCount = scene.RecordCount(words)
	return r.objectCount
}

// scaledSize returns the offscreen target size for a window size.
func (r *Renderer) scaledSize(width, height int) (int, int) {
	s := float64(r.config.RenderScale)
	return max(int(float64(width)*s+0.5), 1), max(int(float64(height)*s+0.5), 1)
}

// Draw renders one frame. ObjectCount is capped at what the last
// UploadScene call actually uploaded.
func (r *Renderer) Draw(u FrameUniforms) {
	if r.offscreen != nil {
		r.offscreen.Bind()
	}
	gl.Clear(gl.COLOR_BUFFER_BIT)

	count := min(u.ObjectCount, r.objectCount)

	r.program.Use()
	r.program.SetVec3("cameraPosition", u.CameraPosition)
	r.program.SetMat4("viewMatrix", u.View)
	r.program.SetMat4("projectionMatrix", u.Projection)
	r.program.SetFloat("time", u.Time)
	r.program.SetInt("objectCount", int32(count))
	r.program.SetVec3("lightDirection", u.LightDirection)

	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, sceneBinding, r.sceneSSBO)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	if r.offscreen != nil {
		r.offscreen.BlitToScreen(r.config.Width, r.config.Height)
	}
}

// Screenshot writes the last drawn frame as a PNG. With an offscreen
// target the image has the target's resolution, not the window's.
func (r *Renderer) Screenshot() (string, error) {
	var (
		pixels []byte
		w, h   int
	)
	if r.offscreen != nil {
		w, h = r.offscreen.Size()
		pixels = r.offscreen.ReadPixels()
	} else {
		w, h = r.config.Width, r.config.Height
		if w <= 0 || h <= 0 {
			return "", fmt.Errorf("screenshot: empty framebuffer %dx%d", w, h)
		}
		pixels = make([]byte, w*h*4)
		gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
		gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	}

	path, err := r.screenshots.Save(pixels, w, h)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	r.log.Info("screenshot saved", zap.String("path", path))
	return path, nil
}

// createQuad uploads two triangles covering clip space, position then uv.
func (r *Renderer) createQuad() {
	vertices := []float32{
		-1, 1, 0, 1,
		-1, -1, 0, 0,
		1, -1, 1, 0,

		-1, 1, 0, 1,
		1, -1, 1, 0,
		1, 1, 1, 1,
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("quad created",
		zap.Uint32("vao", r.quadVAO),
		zap.Uint32("vbo", r.quadVBO),
	)
}
