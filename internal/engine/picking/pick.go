package picking

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/marcher/internal/scene"
)

var unitBox = AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}

// Hit is the nearest record a ray touches.
type Hit struct {
	Index    int // record index in the scene buffer
	Kind     scene.Kind
	Distance float32 // along the world ray
	Point    mgl32.Vec3
}

// ToLocal maps a world ray into the unit space of rec, the same mapping the
// shader applies to sample points. Distances along the local ray equal
// distances along the world ray.
func ToLocal(rec scene.Record, ray Ray) Ray {
	var a mgl32.Mat3
	for row := range 3 {
		for col := range 3 {
			a.Set(row, col, rec.At(row, col))
		}
	}
	at := a.Transpose()
	return Ray{
		Origin:    at.Mul3x1(ray.Origin).Sub(rec.Translation()),
		Direction: at.Mul3x1(ray.Direction),
	}
}

// Pick returns the closest record hit by ray. Records of unknown kind are
// skipped, as the shader skips them.
func Pick(ray Ray, records []scene.Record) (Hit, bool) {
	best := Hit{Index: -1}
	for i, rec := range records {
		local := ToLocal(rec, ray)

		var (
			t   float32
			hit bool
		)
		switch rec.Kind {
		case scene.KindSphere:
			t, hit = local.IntersectUnitSphere()
		case scene.KindBox:
			t, hit = local.IntersectAABB(unitBox)
		}
		if hit && (best.Index < 0 || t < best.Distance) {
			best = Hit{Index: i, Kind: rec.Kind, Distance: t}
		}
	}
	if best.Index < 0 {
		return Hit{}, false
	}
	best.Point = ray.At(best.Distance)
	return best, true
}
