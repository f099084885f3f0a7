package character

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/assert"
	"github.com/oomph-ac/orbit/game"
	"github.com/oomph-ac/orbit/settings"
)

// Mover applies a displacement to a kinematic body at pos, sliding along any surfaces it contacts, and returns
// the displacement that was actually realized.
type Mover interface {
	Move(pos, disp mgl32.Vec3) mgl32.Vec3
}

// Controller owns the kinematic state of a single character and advances it once per tick from move and jump
// input, gravity and the ground state.
type Controller struct {
	conf   settings.Locomotion
	sensor GroundSensor
	mover  Mover

	state State
	// forward is the horizontal camera forward last used to map move input. It is kept so that a camera
	// looking straight up or down does not produce a degenerate basis.
	forward   mgl32.Vec3
	despawned bool

	// Debugf receives state transition traces. It may be nil.
	Debugf func(format string, args ...any)
}

// NewController spawns a character at pos facing yaw degrees.
func NewController(conf settings.Locomotion, ground OverlapQuery, mover Mover, pos mgl32.Vec3, yaw float32) *Controller {
	assert.IsTrue(ground != nil, "character: ground query must not be nil")
	assert.IsTrue(mover != nil, "character: mover must not be nil")

	return &Controller{
		conf:    conf,
		sensor:  GroundSensor{Query: ground},
		mover:   mover,
		state:   State{Position: pos, Yaw: game.WrapYaw(yaw)},
		forward: mgl32.Vec3{0, 0, 1},
	}
}

// State returns a copy of the character state.
func (c *Controller) State() State {
	return c.state
}

// Position returns the current position of the character.
func (c *Controller) Position() mgl32.Vec3 {
	return c.state.Position
}

// Active returns false once the character has been despawned.
func (c *Controller) Active() bool {
	return !c.despawned
}

// Despawn destroys the character. Every later call on the controller is a no-op.
func (c *Controller) Despawn() {
	if c.despawned {
		return
	}
	c.despawned = true
	c.debugf("character: despawned at %v", game.RoundVec32(c.state.Position, 3))
}

// Gravity returns the vertical acceleration applied every tick.
func (c *Controller) Gravity() float32 {
	return c.conf.Gravity()
}

// JumpImpulse returns the vertical velocity a jump starts with.
func (c *Controller) JumpImpulse() float32 {
	return math32.Sqrt(math32.Max(0, c.conf.JumpHeight*c.conf.GroundStickAcceleration*-c.Gravity()))
}

// SetMoveInput maps a planar input, X right and Y forward relative to the camera, to the world-space move
// vector. The camera forward is flattened onto the horizontal plane to form the forward axis. An input with
// a near-zero magnitude clears the move vector, which keeps the current facing.
func (c *Controller) SetMoveInput(raw mgl32.Vec2, cameraForward mgl32.Vec3) {
	if c.despawned {
		return
	}

	mag := raw.Len()
	if mag <= game.Epsilon || !game.IsFinite(mag) {
		c.state.Move = mgl32.Vec3{}
		return
	}
	if flat := game.Flatten(cameraForward); flat.Len() > game.Epsilon {
		c.forward = flat.Normalize()
	}
	if mag > 1 {
		raw = raw.Mul(1 / mag)
	}

	right := game.RotateAboutUp(c.forward, 90)
	c.state.Move = right.Mul(raw.X()).Add(c.forward.Mul(raw.Y()))
}

// SetJumpInput starts a jump if pressed is a rising edge of the jump button and the character is grounded.
func (c *Controller) SetJumpInput(pressed bool) {
	if c.despawned || !pressed || !c.state.Grounded() {
		return
	}
	c.state.VerticalVelocity = c.JumpImpulse()
	c.debugf("character: jump vy=%v", game.Round32(c.state.VerticalVelocity, 4))
}

// Tick advances the character by dt seconds: it senses the ground, keeps the character stuck to it, turns
// towards the move direction, integrates gravity and finally moves the body.
func (c *Controller) Tick(dt float32) {
	if c.despawned {
		return
	}
	if dt < 0 || !game.IsFinite(dt) {
		dt = 0
	}

	c.senseGround()
	if c.state.Grounded() && c.state.VerticalVelocity < 0 {
		c.state.VerticalVelocity = -c.conf.GroundStickAcceleration
	}

	if c.state.Move.LenSqr() > 0 {
		angle, cond := turnTowards(c.state.Facing(), c.state.Move.Normalize(), c.conf.TurnRate*dt)
		c.state.Yaw = game.WrapYaw(c.state.Yaw + angle)
		c.state.TurnAngle, c.state.Turn = angle, cond
	} else {
		c.state.TurnAngle, c.state.Turn = 0, TurnNone
	}

	c.state.VerticalVelocity += c.Gravity() * dt

	velocity := c.state.Move.Mul(c.conf.MaxSpeed).Add(mgl32.Vec3{0, c.state.VerticalVelocity})
	realized := c.mover.Move(c.state.Position, velocity.Mul(dt))
	c.state.Position = c.state.Position.Add(realized)
	c.state.Displacement = realized
}

// ProbePosition returns the centre of the ground probe sphere: the configured offset rotated by the facing
// of the character.
func (c *Controller) ProbePosition() mgl32.Vec3 {
	offset := c.state.Rotation().Rotate(mgl32.Vec3{0, c.conf.GroundProbeHeight})
	return c.state.Position.Add(offset)
}

func (c *Controller) senseGround() {
	next := GroundStateAirborne
	if c.sensor.IsGrounded(c.ProbePosition(), c.conf.GroundProbeRadius, game.Layer(c.conf.GroundMask)) {
		next = GroundStateGrounded
	}
	if next != c.state.Ground {
		c.debugf("character: %v -> %v at %v", c.state.Ground, next, game.RoundVec32(c.state.Position, 3))
	}
	c.state.Ground = next
}

func (c *Controller) debugf(format string, args ...any) {
	if c.Debugf != nil {
		c.Debugf(format, args...)
	}
}
