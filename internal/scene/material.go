package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidMaterial is returned by Material.Validate.
var ErrInvalidMaterial = errors.New("invalid material")

// Material is the fixed per-object surface record. Metal and Dielectric are
// meant to be exclusive; IOR only matters for dielectrics.
type Material struct {
	Color      mgl32.Vec3 // linear RGB, expected in [0,1]
	Roughness  float32
	Metal      bool
	Dielectric bool
	IOR        float32
}

// Matte returns a rough non-metallic material.
func Matte(color mgl32.Vec3) Material {
	return Material{Color: color, IOR: 1}
}

// Metallic returns a metal with the given tint and roughness.
func Metallic(color mgl32.Vec3, roughness float32) Material {
	return Material{Color: color, Roughness: roughness, Metal: true, IOR: 1}
}

// Glass returns a clear dielectric.
func Glass(ior float32) Material {
	return Material{Color: mgl32.Vec3{1, 1, 1}, Dielectric: true, IOR: ior}
}

// Validate reports values the shader has no defined behavior for.
// Encoding never calls it.
func (m Material) Validate() error {
	if m.Metal && m.Dielectric {
		return fmt.Errorf("%w: both metal and dielectric", ErrInvalidMaterial)
	}
	for i, c := range m.Color {
		if c < 0 || c > 1 {
			return fmt.Errorf("%w: color channel %d is %g, outside [0,1]", ErrInvalidMaterial, i, c)
		}
	}
	if m.Roughness < 0 || m.Roughness > 1 {
		return fmt.Errorf("%w: roughness %g outside [0,1]", ErrInvalidMaterial, m.Roughness)
	}
	if m.Dielectric && m.IOR <= 0 {
		return fmt.Errorf("%w: dielectric needs a positive ior, got %g", ErrInvalidMaterial, m.IOR)
	}
	return nil
}
