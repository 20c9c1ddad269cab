// Package lighting computes light parameters passed to the ray-march shader.
package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light given by compass angles in degrees.
type Sun struct {
	Azimuth   float32 // rotation around +Y, 0 points toward +Z
	Elevation float32 // angle above the horizon
}

// DefaultSun lights the demo scene from the upper right.
var DefaultSun = Sun{Azimuth: 55, Elevation: 50}

// Direction returns the unit vector pointing from the scene toward the sun.
func (s Sun) Direction() mgl32.Vec3 {
	az := float64(mgl32.DegToRad(s.Azimuth))
	el := float64(mgl32.DegToRad(mgl32.Clamp(s.Elevation, -90, 90)))

	return mgl32.Vec3{
		float32(gomath.Cos(el) * gomath.Sin(az)),
		float32(gomath.Sin(el)),
		float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}
