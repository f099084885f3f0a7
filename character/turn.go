package character

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/game"
)

// TurnCondition names the geometric case a turn towards the move direction fell into.
type TurnCondition uint8

const (
	// TurnNone means there was no move direction to turn towards.
	TurnNone TurnCondition = iota
	// TurnGeneral is any turn where facing and move direction are not (anti-)parallel.
	TurnGeneral
	// TurnAligned means the character already faces the move direction.
	TurnAligned
	// TurnAntiParallel means the move direction is exactly behind the character.
	TurnAntiParallel
)

func (t TurnCondition) String() string {
	switch t {
	case TurnGeneral:
		return "general"
	case TurnAligned:
		return "aligned"
	case TurnAntiParallel:
		return "anti-parallel"
	default:
		return "none"
	}
}

// turnTowards returns the signed angle in degrees to rotate facing by about the up axis to turn it towards dir,
// limited to maxStep degrees. Both vectors must be horizontal unit vectors. The magnitude is the arcsine of the
// cross product length, so obtuse turns are covered over several ticks.
func turnTowards(facing, dir mgl32.Vec3, maxStep float32) (float32, TurnCondition) {
	cross := facing.Cross(dir)
	crossLen := cross.Len()

	var (
		angle float32
		cond  = TurnGeneral
	)
	if crossLen <= game.Epsilon {
		if facing.Dot(dir) > 0 {
			return 0, TurnAligned
		}
		angle, cond = 180, TurnAntiParallel
	} else {
		angle = mgl32.RadToDeg(math32.Asin(math32.Min(crossLen, 1)))
	}

	angle = math32.Min(angle, math32.Max(maxStep, 0))
	// A negative vertical cross component means dir lies on the side that negative yaw turns towards.
	if cross.Y() < 0 {
		angle = -angle
	}
	return angle, cond
}
