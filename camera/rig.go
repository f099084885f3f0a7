package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/assert"
	"github.com/oomph-ac/orbit/game"
	"github.com/oomph-ac/orbit/settings"
)

// LineQuery returns the distance from start to the first surface in mask hit by the segment from start to end.
type LineQuery interface {
	Line(start, end mgl32.Vec3, mask game.Layer) (float32, bool)
}

// Subject is anything the rig can follow.
type Subject interface {
	Position() mgl32.Vec3
	// Active returns false once the subject no longer exists.
	Active() bool
}

// Rig is an orbit camera that follows a subject. Look input turns and pitches it, zoom input changes the
// distance the user wants, and every tick the camera is pulled in front of anything blocking the line of sight
// to the subject.
type Rig struct {
	conf  settings.Camera
	query LineQuery

	subject Subject
	binding Binding
	state   State

	// Debugf receives binding transition traces. It may be nil.
	Debugf func(format string, args ...any)
}

// NewRig returns an unbound rig.
func NewRig(conf settings.Camera, query LineQuery) *Rig {
	assert.IsTrue(query != nil, "camera: line query must not be nil")

	r := &Rig{conf: conf, query: query}
	r.state.Pitch = game.ClampFloat(0, conf.MinPitch, conf.MaxPitch)
	r.state.TargetDistance = game.ClampFloat(conf.InitialDistance, conf.MinDistance, conf.MaxDistance)
	r.state.EffectiveDistance = r.state.TargetDistance
	return r
}

// State returns a copy of the camera state.
func (r *Rig) State() State {
	return r.state
}

// Forward returns the direction the camera looks in.
func (r *Rig) Forward() mgl32.Vec3 {
	return r.state.Forward()
}

// Binding returns whether the rig follows a subject.
func (r *Rig) Binding() Binding {
	return r.binding
}

// Bound returns true if the rig follows a subject.
func (r *Rig) Bound() bool {
	return r.binding == BindingBound
}

// Subject returns the followed subject, or nil if the rig is unbound.
func (r *Rig) Subject() Subject {
	return r.subject
}

// Bind makes the rig follow s. Binding nil is the same as calling Unbind.
func (r *Rig) Bind(s Subject) {
	if s == nil {
		r.Unbind()
		return
	}
	r.subject, r.binding = s, BindingBound
	r.debugf("camera: bound to subject at %v", game.RoundVec32(s.Position(), 3))
}

// Unbind stops following the current subject. The camera keeps its last placement.
func (r *Rig) Unbind() {
	if r.binding == BindingUnbound {
		return
	}
	r.subject, r.binding = nil, BindingUnbound
	r.debugf("camera: unbound")
}

// ApplyLook turns the rig about the world up axis and pitches the camera arm. It does nothing while unbound.
func (r *Rig) ApplyLook(delta mgl32.Vec2, dt float32) {
	if !r.Bound() || !validDelta(dt) {
		return
	}
	// Non-finite components are dropped.
	if turn := delta.X() * r.conf.HorizontalSensitivity * dt; game.IsFinite(turn) {
		r.state.Yaw = game.WrapYaw(r.state.Yaw + turn)
	}
	if tilt := delta.Y() * r.conf.VerticalSensitivity * dt; game.IsFinite(tilt) {
		r.state.Pitch = game.ClampFloat(r.state.Pitch-tilt, r.conf.MinPitch, r.conf.MaxPitch)
	}
}

// ApplyZoom moves the target distance closer for positive deltas. It does nothing while unbound.
func (r *Rig) ApplyZoom(delta float32, dt float32) {
	if !r.Bound() || !validDelta(dt) {
		return
	}
	step := delta * r.conf.ZoomSpeed * dt
	if !game.IsFinite(step) {
		return
	}
	r.state.TargetDistance = game.ClampFloat(r.state.TargetDistance-step, r.conf.MinDistance, r.conf.MaxDistance)
}

// Tick centres the rig on the subject and places the camera behind it, as far as the target distance allows
// without passing through a surface in the collision mask. A subject that is no longer active unbinds the rig.
func (r *Rig) Tick() {
	if !r.Bound() {
		return
	}
	if !r.subject.Active() {
		r.debugf("camera: subject despawned")
		r.Unbind()
		return
	}

	pos := r.subject.Position()
	r.state.RigPosition = pos

	minDist, maxDist := r.conf.MinDistance, r.conf.MaxDistance
	r.state.Pitch = game.ClampFloat(r.state.Pitch, r.conf.MinPitch, r.conf.MaxPitch)
	r.state.TargetDistance = game.ClampFloat(r.state.TargetDistance, minDist, maxDist)

	backward := r.state.Forward().Mul(-1)
	start := pos.Add(backward.Mul(minDist))
	end := pos.Add(backward.Mul(maxDist))

	if d, hit := r.query.Line(start, end, game.Layer(r.conf.CollisionMask)); hit {
		r.state.EffectiveDistance = math32.Min(r.state.TargetDistance, minDist+math32.Max(d, 0))
		r.state.Obstructed = r.state.EffectiveDistance < r.state.TargetDistance &&
			!game.Float32ApproxEq(r.state.EffectiveDistance, r.state.TargetDistance)
	} else {
		r.state.EffectiveDistance = r.state.TargetDistance
		r.state.Obstructed = false
	}
	r.state.CameraPosition = pos.Add(backward.Mul(r.state.EffectiveDistance))
}

func (r *Rig) debugf(format string, args ...any) {
	if r.Debugf != nil {
		r.Debugf(format, args...)
	}
}

func validDelta(dt float32) bool {
	return dt >= 0 && game.IsFinite(dt)
}
