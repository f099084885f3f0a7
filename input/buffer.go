package input

import "github.com/go-gl/mathgl/mgl32"

// Buffer collects input events delivered between two ticks and hands them out as one Events value. The
// latest move vector wins, look and zoom deltas accumulate, and a jump press is latched until drained.
//
// A Buffer is not safe for concurrent use; the driver owns it and drains it from the tick loop.
type Buffer struct {
	pending  Events
	jumpDown bool
}

// Move records a new move vector, replacing any vector received earlier in the same tick.
func (b *Buffer) Move(v mgl32.Vec2) {
	b.pending.Move, b.pending.HasMove = v, true
}

// Look adds a look delta.
func (b *Buffer) Look(delta mgl32.Vec2) {
	b.pending.Look, b.pending.HasLook = b.pending.Look.Add(delta), true
}

// Zoom adds a zoom delta.
func (b *Buffer) Zoom(delta float32) {
	b.pending.Zoom, b.pending.HasZoom = b.pending.Zoom+delta, true
}

// Jump records the current state of the jump button. Only the transition from released to pressed produces
// a jump event.
func (b *Buffer) Jump(pressed bool) {
	if pressed && !b.jumpDown {
		b.pending.Jump = true
	}
	b.jumpDown = pressed
}

// Drain returns the events received since the previous call and resets the buffer.
func (b *Buffer) Drain() Events {
	ev := b.pending
	b.pending = Events{}
	return ev
}
