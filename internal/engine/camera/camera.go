// Package camera provides the free-flying camera used to view the scene.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/marcher/pkg/math"
)

const (
	// DefaultSpeed is the movement speed in world units per second.
	DefaultSpeed = 2.5
	// DefaultSensitivity converts mouse delta units to degrees.
	DefaultSensitivity = 0.1
	// PitchLimit bounds pitch when look input is constrained.
	PitchLimit = 89.0
)

// ErrZeroAxis is matched by the error Rotate returns for a zero-length axis.
var ErrZeroAxis = math.ErrDegenerate

// Camera is a fly camera driven by Euler angles: yaw in X, pitch in Y, Z
// unused. The front, right and up vectors are derived from the angles after
// every orientation change and cannot be set directly.
type Camera struct {
	// Speed and Sensitivity tune ProcessMovement and ProcessLookDelta.
	Speed       float32
	Sensitivity float32

	position mgl32.Vec3
	worldUp  mgl32.Vec3
	euler    mgl32.Vec3

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// New creates a camera at position with the given world up vector and Euler
// angles in degrees.
func New(position, worldUp, euler mgl32.Vec3) *Camera {
	c := &Camera{
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		position:    position,
		worldUp:     worldUp,
		euler:       euler,
		right:       mgl32.Vec3{1, 0, 0},
	}
	c.updateVectors()
	return c
}

// Position returns the camera position.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// WorldUp returns the reference up vector.
func (c *Camera) WorldUp() mgl32.Vec3 { return c.worldUp }

// EulerAngle returns yaw, pitch and the unused roll, in degrees.
func (c *Camera) EulerAngle() mgl32.Vec3 { return c.euler }

// Yaw returns the yaw in degrees.
func (c *Camera) Yaw() float32 { return c.euler[0] }

// Pitch returns the pitch in degrees.
func (c *Camera) Pitch() float32 { return c.euler[1] }

// Front returns the unit view direction.
func (c *Camera) Front() mgl32.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *Camera) Right() mgl32.Vec3 { return c.right }

// Up returns the unit camera up vector.
func (c *Camera) Up() mgl32.Vec3 { return c.up }

// SetPosition moves the camera to p. Orientation is unchanged.
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
}

// SetEulerAngle replaces the orientation.
func (c *Camera) SetEulerAngle(e mgl32.Vec3) {
	c.euler = e
	c.updateVectors()
}

// MoveBy translates the camera by offset.
func (c *Camera) MoveBy(offset mgl32.Vec3) {
	c.position = c.position.Add(offset)
}

// Rotate turns the view direction by angle degrees about axis, then
// re-derives yaw and pitch from the new direction. Roll is lost, and near
// pitch ±90 the yaw can jump. The new yaw is taken within 180 degrees of
// the old one, so unbounded yaw from look input survives a round trip.
// A zero-length axis or non-finite angle returns a *math.DomainError and
// leaves the camera unchanged.
func (c *Camera) Rotate(angle float32, axis mgl32.Vec3) error {
	front, err := math.RotateAbout(c.front, angle, axis)
	if err != nil {
		return err
	}
	yaw, pitch := math.YawPitch(front)
	c.euler[0] = c.euler[0] + math.WrapDegrees(yaw-c.euler[0])
	c.euler[1] = pitch
	c.updateVectors()
	return nil
}

// ProcessMovement moves Speed*dt along the basis vector for d. Unknown
// directions do nothing.
func (c *Camera) ProcessMovement(d Direction, dt float32) {
	velocity := c.Speed * dt
	switch d {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	case Up:
		c.position = c.position.Add(c.up.Mul(velocity))
	case Down:
		c.position = c.position.Sub(c.up.Mul(velocity))
	}
}

// ProcessLookDelta turns the camera by a mouse delta. With constrainPitch
// the pitch is clamped to ±PitchLimit so the basis never degenerates.
func (c *Camera) ProcessLookDelta(dx, dy float32, constrainPitch bool) {
	c.euler[0] += dx * c.Sensitivity
	c.euler[1] += dy * c.Sensitivity

	if constrainPitch {
		c.euler[1] = mgl32.Clamp(c.euler[1], -PitchLimit, PitchLimit)
	}

	c.updateVectors()
}

// ViewMatrix returns the right-handed look-at matrix toward position+front.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// updateVectors recomputes front, then right, then up from the Euler
// angles. Looking straight along worldUp leaves front x worldUp undefined;
// the previous right vector, made orthogonal to the new front, is kept.
func (c *Camera) updateVectors() {
	front, err := math.Normalize("camera front", math.Direction(c.euler[0], c.euler[1]))
	if err != nil {
		return
	}
	c.front = front

	right, err := math.Normalize("camera right", c.front.Cross(c.worldUp))
	if err != nil {
		prev := c.right.Sub(c.front.Mul(c.right.Dot(c.front)))
		if right, err = math.Normalize("camera right", prev); err != nil {
			right = c.right
		}
	}
	c.right = right

	up, err := math.Normalize("camera up", c.right.Cross(c.front))
	if err == nil {
		c.up = up
	}
}
