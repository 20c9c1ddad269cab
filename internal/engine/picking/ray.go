// Package picking casts rays from the screen into the packed scene.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line. Direction need not be normalized; distances returned
// by the intersection methods are in units of Direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point t units of Direction along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB creates a box from two corners in any order.
func NewAABB(a, b mgl32.Vec3) AABB {
	var box AABB
	for i := range 3 {
		box.Min[i] = min(a[i], b[i])
		box.Max[i] = max(a[i], b[i])
	}
	return box
}

// ScreenToRay converts pixel coordinates (origin top-left) to a world-space
// ray with a normalized direction. invViewProj is the inverse of
// projection * view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // flip Y

	near := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, 1, 1})

	dir := far.Sub(near)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: near, Direction: dir}
}

func unproject(inv mgl32.Mat4, ndc mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(ndc)
	if p[3] != 0 {
		return p.Vec3().Mul(1 / p[3])
	}
	return p.Vec3()
}

// IntersectAABB tests the ray against box with the slab method. It returns
// the entry distance, or the exit distance if the ray starts inside.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for i := range 3 {
		if r.Direction[i] == 0 {
			if r.Origin[i] < box.Min[i] || r.Origin[i] > box.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[i] - r.Origin[i]) / r.Direction[i]
		t2 := (box.Max[i] - r.Origin[i]) / r.Direction[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectUnitSphere tests the ray against the sphere of radius 1 at the
// origin, returning the exit distance if the ray starts inside.
func (r Ray) IntersectUnitSphere() (t float32, hit bool) {
	a := float64(r.Direction.Dot(r.Direction))
	if a == 0 {
		return 0, false
	}
	b := float64(r.Origin.Dot(r.Direction))
	c := float64(r.Origin.Dot(r.Origin)) - 1

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := gomath.Sqrt(disc)
	near, far := (-b-sq)/a, (-b+sq)/a
	switch {
	case near >= 0:
		return float32(near), true
	case far >= 0:
		return float32(far), true
	default:
		return 0, false
	}
}
