package simulation

import (
	"iter"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/assert"
	"github.com/oomph-ac/orbit/camera"
	"github.com/oomph-ac/orbit/character"
	"github.com/oomph-ac/orbit/game"
	"github.com/oomph-ac/orbit/input"
	"github.com/oomph-ac/orbit/oerror"
	"github.com/oomph-ac/orbit/settings"
	"github.com/oomph-ac/orbit/utils"
	"github.com/oomph-ac/orbit/world"
	"github.com/sirupsen/logrus"
)

// Simulation drives the characters of a world and the camera that follows one of them. Tick is its single entry
// point and runs the phases of a tick strictly in order: input, locomotion, camera.
//
// A Simulation is not safe for concurrent use.
type Simulation struct {
	conf  settings.Settings
	world *world.World
	body  world.Body

	characters *orderedmap.OrderedMap[string, *character.Controller]
	// followed is the ID of the character the camera was last told to follow.
	followed string
	rig      *camera.Rig

	tick    uint64
	history *utils.CircularQueue[Snapshot]

	log *logrus.Logger
}

// New returns a simulation over the world passed. The settings are expected to have been clamped and
// validated already, see settings.Load. A nil logger falls back to the logrus standard logger.
func New(conf settings.Settings, w *world.World, log *logrus.Logger) *Simulation {
	assert.IsTrue(w != nil, "simulation: world must not be nil")
	if log == nil {
		log = logrus.StandardLogger()
	}

	s := &Simulation{
		conf:  conf,
		world: w,
		body: world.Body{
			World:      w,
			Width:      conf.Locomotion.BodyWidth,
			Height:     conf.Locomotion.BodyHeight,
			StepHeight: conf.Locomotion.StepHeight,
			Mask:       game.Layer(conf.Locomotion.BodyMask),
		},
		characters: orderedmap.NewOrderedMap[string, *character.Controller](),
		rig:        camera.NewRig(conf.Camera, w),
		history:    utils.NewCircularQueue[Snapshot](max(conf.Simulation.HistorySize, 1)),
		log:        log,
	}
	s.rig.Debugf = log.WithField("component", "camera").Debugf
	return s
}

// Spawn creates a character with the given ID at pos, facing yaw degrees.
func (s *Simulation) Spawn(id string, pos mgl32.Vec3, yaw float32) (*character.Controller, error) {
	if id == "" {
		return nil, oerror.New("simulation: character id must not be empty")
	}
	if _, ok := s.characters.Get(id); ok {
		return nil, oerror.New("simulation: character %q already exists", id)
	}

	c := character.NewController(s.conf.Locomotion, s.world, s.body, pos, yaw)
	c.Debugf = s.log.WithField("character", id).Debugf
	s.characters.Set(id, c)
	s.log.WithFields(logrus.Fields{"character": id, "pos": pos, "yaw": yaw}).Info("character spawned")
	return c, nil
}

// Despawn destroys the character with the given ID. A camera following it notices on its next tick and
// becomes unbound.
func (s *Simulation) Despawn(id string) bool {
	c, ok := s.characters.Get(id)
	if !ok {
		return false
	}
	c.Despawn()
	s.characters.Delete(id)
	if s.followed == id {
		s.followed = ""
	}
	s.log.WithField("character", id).Info("character despawned")
	return true
}

// Character returns the character with the given ID.
func (s *Simulation) Character(id string) (*character.Controller, bool) {
	return s.characters.Get(id)
}

// IDs returns the IDs of all characters in the order they were spawned.
func (s *Simulation) IDs() []string {
	return s.characters.Keys()
}

// Follow binds the camera to the character with the given ID. If no such character exists the camera is
// unbound and false is returned.
func (s *Simulation) Follow(id string) bool {
	c, ok := s.characters.Get(id)
	if !ok {
		s.followed = ""
		s.rig.Unbind()
		return false
	}
	s.followed = id
	s.rig.Bind(c)
	return true
}

// Followed returns the ID of the followed character, or an empty string.
func (s *Simulation) Followed() string {
	return s.followed
}

// Rig returns the camera rig.
func (s *Simulation) Rig() *camera.Rig {
	return s.rig
}

// World returns the world the simulation runs in.
func (s *Simulation) World() *world.World {
	return s.world
}

// Tick advances the simulation by dt seconds using the events received since the previous tick:
//
//  1. look and zoom input is applied to the camera, then move and jump input to the followed character,
//     mapped with the camera forward that results from this tick's look input;
//  2. every character senses the ground, turns, integrates gravity and moves;
//  3. the camera recentres on the position its subject reached in step 2 and resolves its distance.
func (s *Simulation) Tick(dt float32, ev input.Events) Snapshot {
	s.tick++

	var followed *character.Controller
	if s.followed != "" && s.rig.Bound() {
		followed, _ = s.characters.Get(s.followed)
	}

	if followed != nil {
		if ev.HasLook {
			s.rig.ApplyLook(ev.Look, dt)
		}
		if ev.HasZoom {
			s.rig.ApplyZoom(ev.Zoom, dt)
		}
		if ev.HasMove {
			followed.SetMoveInput(ev.Move, s.rig.Forward())
		}
		followed.SetJumpInput(ev.Jump)
	}

	for el := s.characters.Front(); el != nil; el = el.Next() {
		el.Value.Tick(dt)
	}

	s.rig.Tick()
	if !s.rig.Bound() {
		s.followed = ""
	}

	snap := s.snapshot(dt)
	s.history.Append(snap)
	if s.log.IsLevelEnabled(logrus.TraceLevel) {
		s.log.WithFields(logrus.Fields{
			"tick":      snap.Tick,
			"character": snap.Character,
			"pos":       game.RoundVec32(snap.CharacterState.Position, 3),
			"ground":    snap.CharacterState.Ground,
			"camera":    game.RoundVec32(snap.Camera.CameraPosition, 3),
			"distance":  game.Round32(snap.Camera.EffectiveDistance, 3),
		}).Trace("tick")
	}
	return snap
}

func (s *Simulation) snapshot(dt float32) Snapshot {
	snap := Snapshot{
		Tick:    s.tick,
		DT:      dt,
		Binding: s.rig.Binding(),
		Camera:  s.rig.State(),
	}
	if c, ok := s.characters.Get(s.followed); ok && s.followed != "" {
		snap.Character = s.followed
		snap.CharacterState = c.State()
	}
	return snap
}

// History yields the most recent snapshots from oldest to newest.
func (s *Simulation) History() iter.Seq[Snapshot] {
	return s.history.Iter()
}

// LastSnapshot returns the snapshot of the most recent tick. The boolean ok is false before the first tick.
func (s *Simulation) LastSnapshot() (snap Snapshot, ok bool) {
	return s.history.Latest()
}

// HistoryLen returns the amount of snapshots currently held in the history.
func (s *Simulation) HistoryLen() int {
	return s.history.Len()
}

// TickCount returns the amount of ticks run so far.
func (s *Simulation) TickCount() uint64 {
	return s.tick
}
