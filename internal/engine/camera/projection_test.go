package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestProjectionUsesDegrees(t *testing.T) {
	p := Projection(90, 800, 800, 0.1, 100)

	// cot(45deg) is 1 on both axes for a square viewport.
	assert.InDelta(t, 1, p.At(0, 0), 1e-5)
	assert.InDelta(t, 1, p.At(1, 1), 1e-5)
}

func TestProjectionAspect(t *testing.T) {
	p := Projection(45, 1280, 720, 0.1, 100)

	f := 1 / float32(gomath.Tan(float64(mgl32.DegToRad(45))/2))
	assert.InDelta(t, f, p.At(1, 1), 1e-5)
	assert.InDelta(t, f*720/1280, p.At(0, 0), 1e-5)
}

func TestProjectionZeroHeight(t *testing.T) {
	p := Projection(45, 640, 0, 0.1, 100)
	for _, v := range p {
		assert.False(t, gomath.IsNaN(float64(v)) || gomath.IsInf(float64(v), 0))
	}
}
