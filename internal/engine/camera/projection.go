package camera

import "github.com/go-gl/mathgl/mgl32"

// Projection returns a perspective matrix for a vertical field of view in
// degrees and a framebuffer size in pixels. A zero height is treated as 1.
func Projection(fovDegrees float32, width, height int, near, far float32) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, near, far)
}
