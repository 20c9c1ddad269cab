package picking

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/marcher/internal/scene"
)

func records(t *testing.T, objs ...scene.Object) []scene.Record {
	t.Helper()
	s := scene.New()
	for _, obj := range objs {
		s.Add(obj)
	}
	recs, err := scene.DecodeRecords(s.Encode())
	require.NoError(t, err)
	return recs
}

func place(pos, scale, rot mgl32.Vec3) scene.Transform {
	return scene.NewTransform(pos, scale, rot)
}

var (
	down  = Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	matte = scene.Matte(mgl32.Vec3{1, 1, 1})
	unit  = mgl32.Vec3{1, 1, 1}
)

func TestToLocalMatchesTransform(t *testing.T) {
	recs := records(t, scene.NewSphere(place(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 2, 2}, mgl32.Vec3{}), matte))

	local := ToLocal(recs[0], Ray{Origin: mgl32.Vec3{3, 2, 3}, Direction: mgl32.Vec3{2, 0, 0}})

	assert.True(t, local.Origin.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5), "origin %v", local.Origin)
	assert.True(t, local.Direction.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5), "direction %v", local.Direction)
}

func TestPickSphere(t *testing.T) {
	tests := []struct {
		name  string
		scale float32
		want  float32
	}{
		{"unit", 1, 4},
		{"scaled", 2, 3},
		{"shrunk", 0.5, 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mgl32.Vec3{tt.scale, tt.scale, tt.scale}
			hit, ok := Pick(down, records(t, scene.NewSphere(place(mgl32.Vec3{}, s, mgl32.Vec3{}), matte)))
			require.True(t, ok)
			assert.Equal(t, 0, hit.Index)
			assert.Equal(t, scene.KindSphere, hit.Kind)
			assert.InDelta(t, tt.want, hit.Distance, 1e-4)
			assert.InDelta(t, 5-tt.want, hit.Point.Z(), 1e-4)
		})
	}
}

func TestPickRotatedBox(t *testing.T) {
	// a 45 degree turn about Y puts an edge of the box at z = sqrt(2)
	recs := records(t, scene.NewBox(place(mgl32.Vec3{}, unit, mgl32.Vec3{0, 45, 0}), matte))

	hit, ok := Pick(down, recs)
	require.True(t, ok)
	assert.Equal(t, scene.KindBox, hit.Kind)
	assert.InDelta(t, 5-1.41421, hit.Distance, 1e-3)
}

func TestPickNearest(t *testing.T) {
	recs := records(t,
		scene.NewSphere(place(mgl32.Vec3{0, 0, -4}, unit, mgl32.Vec3{}), matte),
		scene.NewBox(place(mgl32.Vec3{3, 0, 0}, unit, mgl32.Vec3{}), matte),
		scene.NewBox(place(mgl32.Vec3{0, 0, 1}, unit, mgl32.Vec3{}), matte),
	)

	hit, ok := Pick(down, recs)
	require.True(t, ok)
	assert.Equal(t, 2, hit.Index)
	assert.InDelta(t, 3, hit.Distance, 1e-4)
}

func TestPickCompoundChildren(t *testing.T) {
	group := scene.NewCompound(place(mgl32.Vec3{0, 0, -2}, unit, mgl32.Vec3{}))
	group.AddChild(scene.NewSphere(place(mgl32.Vec3{5, 0, 0}, unit, mgl32.Vec3{}), matte))
	group.AddChild(scene.NewSphere(place(mgl32.Vec3{}, unit, mgl32.Vec3{}), matte))

	hit, ok := Pick(down, records(t, group))
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.InDelta(t, 6, hit.Distance, 1e-4)
}

func TestPickMiss(t *testing.T) {
	recs := records(t, scene.NewSphere(place(mgl32.Vec3{4, 0, 0}, unit, mgl32.Vec3{}), matte))

	_, ok := Pick(down, recs)
	assert.False(t, ok)

	_, ok = Pick(down, nil)
	assert.False(t, ok)
}
