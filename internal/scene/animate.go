package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Animation mutates scene state for a point in time, in seconds since the
// scene started. Animations are pure functions of time so frames can be
// skipped or replayed.
type Animation interface {
	Apply(t float32)
}

// Animator runs animations in registration order.
type Animator struct {
	animations []Animation
}

// Add registers a.
func (a *Animator) Add(anim Animation) {
	a.animations = append(a.animations, anim)
}

// Len returns the number of registered animations.
func (a *Animator) Len() int {
	return len(a.animations)
}

// Apply runs every animation for time t.
func (a *Animator) Apply(t float32) {
	for _, anim := range a.animations {
		anim.Apply(t)
	}
}

// Oscillate moves one position axis along Center + Amplitude*sin(t*Frequency + Phase).
type Oscillate struct {
	Target    *Transform
	Axis      int
	Center    float32
	Amplitude float32
	Frequency float32 // radians per second
	Phase     float32
}

func (o Oscillate) Apply(t float32) {
	o.Target.Position[o.Axis] = o.Center + o.Amplitude*float32(gomath.Sin(float64(t*o.Frequency+o.Phase)))
}

// Spin sets rotation to Base + Rate*t, with Rate in degrees per second.
type Spin struct {
	Target *Transform
	Base   mgl32.Vec3
	Rate   mgl32.Vec3
}

func (s Spin) Apply(t float32) {
	s.Target.Rotation = s.Base.Add(s.Rate.Mul(t))
}

// HueCycle sweeps a material's color around the hue wheel at full
// saturation and value. Rate is in degrees per second.
type HueCycle struct {
	Target *Material
	Rate   float32
}

func (h HueCycle) Apply(t float32) {
	hue := gomath.Mod(float64(t*h.Rate), 360)
	if hue < 0 {
		hue += 360
	}
	c := colorful.Hsv(hue, 1, 1).Clamped()
	h.Target.Color = mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}
