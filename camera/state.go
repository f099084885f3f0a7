package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/game"
)

// Binding is whether the rig currently has a subject to follow.
type Binding uint8

const (
	BindingUnbound Binding = iota
	BindingBound
)

func (b Binding) String() string {
	if b == BindingBound {
		return "bound"
	}
	return "unbound"
}

// State is the orbit state of a camera rig.
type State struct {
	// Yaw is the rotation of the rig about the world up axis in degrees.
	Yaw float32
	// Pitch is the downwards tilt of the camera arm in degrees.
	Pitch float32

	// TargetDistance is the distance the user asked for through zoom input.
	TargetDistance float32
	// EffectiveDistance is the distance the camera is actually placed at after accounting for obstructions.
	EffectiveDistance float32
	Obstructed        bool

	RigPosition    mgl32.Vec3
	CameraPosition mgl32.Vec3
}

// ArmRotation returns the local rotation of the camera arm, which is a pure pitch about its lateral axis.
func (s State) ArmRotation() mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(s.Pitch), mgl32.Vec3{1, 0, 0})
}

// Rotation returns the world rotation of the camera.
func (s State) Rotation() mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(s.Yaw), game.Up).Mul(s.ArmRotation())
}

// Forward returns the direction the camera looks in.
func (s State) Forward() mgl32.Vec3 {
	return game.DirectionVector(s.Yaw, s.Pitch)
}
