package character

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/game"
)

// OverlapQuery answers whether any surface on the given layers intersects a sphere.
type OverlapQuery interface {
	SphereOverlap(center mgl32.Vec3, radius float32, mask game.Layer) bool
}

// GroundSensor reports whether a probe sphere touches the ground. It has no side effects.
type GroundSensor struct {
	Query OverlapQuery
}

// IsGrounded returns true if a sphere of the given radius at probe overlaps a surface in mask.
func (s GroundSensor) IsGrounded(probe mgl32.Vec3, radius float32, mask game.Layer) bool {
	if s.Query == nil {
		return false
	}
	return s.Query.SphereOverlap(probe, radius, mask)
}
