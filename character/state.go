package character

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/game"
)

// GroundState is whether the character's ground probe touched a ground surface on the last tick.
type GroundState uint8

const (
	GroundStateAirborne GroundState = iota
	GroundStateGrounded
)

func (g GroundState) String() string {
	switch g {
	case GroundStateGrounded:
		return "grounded"
	default:
		return "airborne"
	}
}

// State is the kinematic state of a character. It is written only by the Controller that owns it.
type State struct {
	Position mgl32.Vec3
	// Yaw is the facing of the character in degrees, wrapped to (-180, 180]. A yaw of zero faces +Z.
	Yaw              float32
	VerticalVelocity float32
	Ground           GroundState

	// Move is the world-space planar move vector. Its length never exceeds one.
	Move mgl32.Vec3

	// TurnAngle and Turn describe the rotation applied on the last tick.
	TurnAngle float32
	Turn      TurnCondition
	// Displacement is the displacement realized by the last tick after collisions.
	Displacement mgl32.Vec3
}

// Grounded returns true if the character is in the grounded state.
func (s State) Grounded() bool {
	return s.Ground == GroundStateGrounded
}

// Facing returns the horizontal unit vector the character faces.
func (s State) Facing() mgl32.Vec3 {
	return game.YawVector(s.Yaw)
}

// Rotation returns the facing of the character as a rotation about the world up axis.
func (s State) Rotation() mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(s.Yaw), game.Up)
}
