package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ClampFloat clamps the given value to the given range. If the range is inverted, the lower bound wins, so
// the result collapses to a single value instead of oscillating between the two bounds.
func ClampFloat(num, min, max float32) float32 {
	return math32.Max(min, math32.Min(num, max))
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// YawVector returns the horizontal unit vector a body with the given yaw (in degrees) faces. A yaw of zero
// faces +Z and positive yaw turns towards +X.
func YawVector(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Sin(yawRad), 0, math32.Cos(yawRad)}
}

// DirectionVector returns a direction vector from the given yaw and pitch values. Positive pitch tilts the
// direction downwards.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		m * math32.Sin(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// Flatten drops the vertical component of a vector.
func Flatten(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[2]}
}

// RotateAboutUp rotates the vector around the world up axis by the given amount of degrees.
func RotateAboutUp(v mgl32.Vec3, degrees float32) mgl32.Vec3 {
	return mgl32.QuatRotate(mgl32.DegToRad(degrees), Up).Rotate(v)
}

// WrapYaw wraps an angle in degrees into the range (-180, 180].
func WrapYaw(yaw float32) float32 {
	yaw = math32.Mod(yaw, 360)
	if yaw > 180 {
		yaw -= 360
	} else if yaw <= -180 {
		yaw += 360
	}
	return yaw
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// IsFinite returns false if the value is NaN or infinite.
func IsFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
