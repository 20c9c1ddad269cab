package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOscillate(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{})
	o := Oscillate{Target: &tr, Axis: 1, Center: 1, Amplitude: 2, Frequency: 1}

	o.Apply(0)
	assert.InDelta(t, 1, tr.Position[1], 1e-6)

	o.Apply(float32(mgl32.DegToRad(90)))
	assert.InDelta(t, 3, tr.Position[1], 1e-5)
	assert.Equal(t, float32(0), tr.Position[0])
}

func TestSpin(t *testing.T) {
	tr := IdentityTransform()
	s := Spin{Target: &tr, Base: mgl32.Vec3{10, 0, 0}, Rate: mgl32.Vec3{0, 90, 0}}

	s.Apply(2)
	assert.Equal(t, mgl32.Vec3{10, 180, 0}, tr.Rotation)

	// Spin is a function of time, not an increment.
	s.Apply(2)
	assert.Equal(t, mgl32.Vec3{10, 180, 0}, tr.Rotation)
}

func TestHueCycle(t *testing.T) {
	tests := []struct {
		name string
		t    float32
		want mgl32.Vec3
	}{
		{"red", 0, mgl32.Vec3{1, 0, 0}},
		{"green", 120, mgl32.Vec3{0, 1, 0}},
		{"blue", 240, mgl32.Vec3{0, 0, 1}},
		{"wraps", 360, mgl32.Vec3{1, 0, 0}},
		{"negative time", -120, mgl32.Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Matte(mgl32.Vec3{})
			HueCycle{Target: &m, Rate: 1}.Apply(tt.t)
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], m.Color[i], 1e-5)
			}
		})
	}
}

func TestAnimatorRunsInOrder(t *testing.T) {
	tr := IdentityTransform()

	var a Animator
	a.Add(Spin{Target: &tr, Rate: mgl32.Vec3{1, 0, 0}})
	a.Add(Spin{Target: &tr, Rate: mgl32.Vec3{0, 1, 0}})
	a.Apply(5)

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, mgl32.Vec3{0, 5, 0}, tr.Rotation)
}
