package input

import "github.com/go-gl/mathgl/mgl32"

// Events holds the input delivered for a single tick. Every event type is delivered at most once per tick;
// a missing event leaves the quantity it drives unchanged.
type Events struct {
	// Move is a planar vector in camera-relative axes: X is right, Y is forward.
	Move    mgl32.Vec2
	HasMove bool

	// Look is a two-axis look delta: X turns the camera around the world up axis, Y pitches it.
	Look    mgl32.Vec2
	HasLook bool

	Zoom    float32
	HasZoom bool

	// Jump is true on the tick the jump button goes down.
	Jump bool
}

// Empty returns true if no event was delivered.
func (e Events) Empty() bool {
	return !e.HasMove && !e.HasLook && !e.HasZoom && !e.Jump
}
