package math

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// EulerXYZ returns the rotation for Euler angles in degrees, applied about X
// first, then Y, then Z (R = Rz * Ry * Rx). The ray-march shader decodes
// object matrices assuming this order, so every rotation built from Euler
// angles goes through here.
func EulerXYZ(degrees mgl32.Vec3) mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(degrees[0]))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(degrees[1]))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(degrees[2]))
	return rz.Mul4(ry).Mul4(rx)
}

// Direction returns the unit vector for a yaw and pitch in degrees.
// Yaw turns from +X toward +Z, pitch lifts toward +Y.
func Direction(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(gomath.Cos(y) * gomath.Cos(p)),
		float32(gomath.Sin(p)),
		float32(gomath.Sin(y) * gomath.Cos(p)),
	}
}

// YawPitch is the inverse of Direction for a unit vector: pitch = asin(y),
// yaw = atan2(z, x), both in degrees. At the poles yaw is undefined and
// atan2 picks whatever the residual x/z components dictate.
func YawPitch(dir mgl32.Vec3) (yaw, pitch float32) {
	sy := float64(mgl32.Clamp(dir[1], -1, 1))
	pitch = mgl32.RadToDeg(float32(gomath.Asin(sy)))
	yaw = mgl32.RadToDeg(float32(gomath.Atan2(float64(dir[2]), float64(dir[0]))))
	return yaw, pitch
}

// WrapDegrees maps an angle in degrees into (-180, 180].
func WrapDegrees(d float32) float32 {
	w := float32(gomath.Mod(float64(d), 360))
	switch {
	case w > 180:
		w -= 360
	case w <= -180:
		w += 360
	}
	return w
}

// RotateAbout rotates v by angle degrees around axis. The axis is
// normalized first; a zero-length axis or a non-finite angle is a
// *DomainError.
func RotateAbout(v mgl32.Vec3, angle float32, axis mgl32.Vec3) (mgl32.Vec3, error) {
	if gomath.IsNaN(float64(angle)) || gomath.IsInf(float64(angle), 0) {
		return v, &DomainError{Op: "rotate", Reason: "non-finite angle"}
	}
	n, err := Normalize("rotate", axis)
	if err != nil {
		return v, err
	}
	return mgl32.QuatRotate(mgl32.DegToRad(angle), n).Rotate(v), nil
}
