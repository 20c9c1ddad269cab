package scene

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/marcher/pkg/math"
)

func TestModelMatrixInverseScale(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{}, mgl32.Vec3{2, 1, 1}, mgl32.Vec3{})
	m := tr.ModelMatrix()

	assert.Equal(t, float32(0.5), m.At(0, 0))
	assert.Equal(t, float32(1), m.At(1, 1))
	assert.Equal(t, float32(1), m.At(2, 2))
	assert.Equal(t, float32(1), m.At(3, 3))
}

func TestModelMatrixTranslationRow(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{})
	m := tr.ModelMatrix()

	assert.Equal(t, float32(1), m.At(3, 0))
	assert.Equal(t, float32(2), m.At(3, 1))
	assert.Equal(t, float32(3), m.At(3, 2))
	for row := 0; row < 3; row++ {
		assert.Equal(t, float32(0), m.At(row, 3), "last column row %d", row)
	}
}

func TestModelMatrixRotation(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0, 90})
	got := tr.ModelMatrix()
	want := math.EulerXYZ(mgl32.Vec3{0, 0, 90})

	assert.True(t, got.ApproxEqualThreshold(want, 1e-6), "got %v want %v", got, want)
}

func TestCompose(t *testing.T) {
	parent := NewTransform(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 2, 2}, mgl32.Vec3{10, 0, 0})
	child := NewTransform(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0.5, 3}, mgl32.Vec3{5, 20, 0})

	got := parent.Compose(child)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, got.Position)
	assert.Equal(t, mgl32.Vec3{2, 1, 6}, got.Scale)
	assert.Equal(t, mgl32.Vec3{15, 20, 0}, got.Rotation)

	// Compose returns a new value.
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, parent.Position)
}

func TestTransformValidate(t *testing.T) {
	inf := float32(gomath.Inf(1))

	tests := []struct {
		name    string
		tr      Transform
		wantErr bool
	}{
		{"identity", IdentityTransform(), false},
		{"zero scale", NewTransform(mgl32.Vec3{}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{}), true},
		{"negative scale", NewTransform(mgl32.Vec3{}, mgl32.Vec3{-1, 1, 1}, mgl32.Vec3{}), true},
		{"infinite position", NewTransform(mgl32.Vec3{inf, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tr.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, math.ErrDegenerate), "got %v", err)
		})
	}
}

func TestMaterialValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Material
		wantErr bool
	}{
		{"matte", Matte(mgl32.Vec3{0.5, 0.5, 0.5}), false},
		{"metal", Metallic(mgl32.Vec3{1, 1, 1}, 0.2), false},
		{"glass", Glass(1.5), false},
		{"both flags", Material{Metal: true, Dielectric: true, IOR: 1}, true},
		{"bright color", Matte(mgl32.Vec3{1.5, 0, 0}), true},
		{"rough", Material{Roughness: 2}, true},
		{"glass without ior", Material{Dielectric: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMaterial)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
