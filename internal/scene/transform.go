// Package scene builds the object tree of a ray-marched scene and packs it
// into the flat word buffer read by the GPU interpreter.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/marcher/pkg/math"
)

// Transform places an object: position, per-axis scale and Euler rotation
// in degrees. Scale must be strictly positive on every axis because
// ModelMatrix inverts it; this is not checked.
//
// Transform is a value type. Assigning it copies it.
type Transform struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
}

// NewTransform returns a transform with the given fields.
func NewTransform(position, scale, rotation mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Scale:    scale,
		Rotation: rotation,
	}
}

// IdentityTransform returns a transform at the origin with unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// ModelMatrix returns translate(position) * rotate(rotation) * scale(1/scale).
//
// The matrix maps world space into the primitive's unit space, so scaling is
// undone rather than applied. Translation sits in the bottom row (entries
// (3,0), (3,1), (3,2)); the shader reads the matrix with row vectors.
func (t Transform) ModelMatrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).Transpose()
	rotation := math.EulerXYZ(t.Rotation)
	inv := math.Reciprocal(t.Scale)
	scale := mgl32.Scale3D(inv[0], inv[1], inv[2])
	return translation.Mul4(rotation).Mul4(scale)
}

// Compose nests child under t: positions and rotations add, scales multiply
// per axis. This is not matrix composition and only places children
// correctly under an unrotated parent.
func (t Transform) Compose(child Transform) Transform {
	return Transform{
		Position: t.Position.Add(child.Position),
		Scale:    math.Hadamard(t.Scale, child.Scale),
		Rotation: t.Rotation.Add(child.Rotation),
	}
}

// Validate reports a scale that would make ModelMatrix degenerate.
// Encoding never calls it.
func (t Transform) Validate() error {
	if !math.Finite(t.Position) || !math.Finite(t.Rotation) || !math.Finite(t.Scale) {
		return &math.DomainError{Op: "transform", Reason: "non-finite component"}
	}
	for i, s := range t.Scale {
		if s <= 0 {
			return &math.DomainError{
				Op:     "transform",
				Reason: fmt.Sprintf("scale axis %d is %g, must be positive", i, s),
			}
		}
	}
	return nil
}
