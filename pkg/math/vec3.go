// Package math holds the numeric conventions shared by the scene encoder,
// the camera and the renderer. Vector and matrix types come from mathgl.
package math

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// MinLength is the shortest vector Normalize accepts.
const MinLength = 1e-6

// Normalize returns v scaled to unit length. Vectors shorter than MinLength
// or with non-finite components yield a *DomainError tagged with op.
func Normalize(op string, v mgl32.Vec3) (mgl32.Vec3, error) {
	if !Finite(v) {
		return mgl32.Vec3{}, &DomainError{Op: op, Reason: "non-finite vector"}
	}
	l := v.Len()
	if l < MinLength {
		return mgl32.Vec3{}, &DomainError{Op: op, Reason: "zero-length vector"}
	}
	return v.Mul(1 / l), nil
}

// Finite reports whether every component of v is neither NaN nor infinite.
func Finite(v mgl32.Vec3) bool {
	for _, c := range v {
		f := float64(c)
		if gomath.IsNaN(f) || gomath.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Hadamard returns the component-wise product of a and b.
func Hadamard(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Reciprocal returns 1/v per component. Zero components produce +Inf.
func Reciprocal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{1 / v[0], 1 / v[1], 1 / v[2]}
}
