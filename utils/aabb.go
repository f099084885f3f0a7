package utils

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// contactEpsilon is the gap under which two faces are treated as touching.
const contactEpsilon = 1e-5

// Clip is the outcome of clipping a single-axis velocity of a moving box against a stationary box.
type Clip struct {
	// Velocity stops the moving box at the face of the stationary box. It leaves an existing overlap alone.
	Velocity mgl32.Vec3
	// Depenetration is Velocity, except that a box already overlapping the stationary one is pushed out along
	// the axis it overlaps least on.
	Depenetration mgl32.Vec3

	// Penetration is how deep the boxes overlapped along Axis before moving. It is zero if they did not overlap.
	Penetration float32
	Axis        int
}

// axisContact describes the relation of two boxes along one axis. For separated boxes gap is the (non-positive)
// distance between the facing sides; for overlapping boxes depth is the shallowest way out. normal is the
// direction in which the stationary box pushes the moving one.
type axisContact struct {
	separated bool
	gap       float32
	depth     float32
	normal    float32
}

func contactOnAxis(stationary, moving cube.BBox, axis int) axisContact {
	belowMin := snapTouching(moving.Max()[axis] - stationary.Min()[axis])
	aboveMax := snapTouching(stationary.Max()[axis] - moving.Min()[axis])

	switch {
	case belowMin <= 0:
		return axisContact{separated: true, gap: belowMin, normal: -1}
	case aboveMax <= 0:
		return axisContact{separated: true, gap: aboveMax, normal: 1}
	case belowMin < aboveMax:
		return axisContact{depth: belowMin, normal: -1}
	default:
		return axisContact{depth: aboveMax, normal: 1}
	}
}

func snapTouching(v float32) float32 {
	if math32.Abs(v) <= contactEpsilon {
		return 0
	}
	return v
}

// ClipBox clips vel, a velocity along a single axis, so that the moving box stops at the face of the stationary
// box instead of passing into it. Boxes that are apart on two or more axes never touch during a single-axis
// move and leave vel untouched.
func ClipBox(stationary, moving cube.BBox, vel mgl32.Vec3) Clip {
	clip := Clip{Velocity: vel, Depenetration: vel}
	if BBHasZeroVolume(stationary) {
		return clip
	}

	var contacts [3]axisContact
	apart := -1
	for axis := range 3 {
		contacts[axis] = contactOnAxis(stationary, moving, axis)
		if !contacts[axis].separated {
			continue
		}
		if apart != -1 {
			return clip
		}
		apart = axis
	}

	if apart == -1 {
		shallowest := 0
		for axis := 1; axis < 3; axis++ {
			if contacts[axis].depth < contacts[shallowest].depth {
				shallowest = axis
			}
		}
		c := contacts[shallowest]
		push := c.depth * c.normal
		if push > 0 {
			clip.Depenetration[shallowest] = math32.Max(push, vel[shallowest])
		} else {
			clip.Depenetration[shallowest] = math32.Min(push, vel[shallowest])
		}
		clip.Penetration, clip.Axis = c.depth, shallowest
		return clip
	}

	// The move only reaches the stationary box if it covers the gap between the two.
	c := contacts[apart]
	if c.gap-c.normal*vel[apart] <= 0 {
		return clip
	}
	clip.Velocity[apart] = c.gap * c.normal
	clip.Depenetration[apart] = clip.Velocity[apart]
	return clip
}

// BBHasZeroVolume returns true if the bounding box has zero volume.
func BBHasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}
