package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/game"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Collider is a static, axis-aligned collision surface placed on one or more layers.
type Collider struct {
	Box   cube.BBox
	Layer game.Layer
}

// World is a store of static colliders answering the spatial queries used by the locomotion controller and
// the camera rig. Colliders may be added or removed from any goroutine; queries only take a read lock.
type World struct {
	colliders map[uint64]Collider
	// order keeps query iteration in insertion order so that results never depend on map ordering.
	order  []uint64
	nextID uint64

	log *logrus.Logger

	deadlock.RWMutex
}

// New returns an empty world. A nil logger falls back to the logrus standard logger.
func New(log *logrus.Logger) *World {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &World{
		colliders: make(map[uint64]Collider),
		log:       log,
	}
}

// AddBox adds a collider and returns the ID it can later be removed with.
func (w *World) AddBox(bb cube.BBox, layer game.Layer) uint64 {
	w.Lock()
	defer w.Unlock()

	w.nextID++
	id := w.nextID
	w.colliders[id] = Collider{Box: bb, Layer: layer}
	w.order = append(w.order, id)
	w.log.Debugf("world: added collider %d min=%v max=%v layer=%b", id, bb.Min(), bb.Max(), layer)
	return id
}

// RemoveBox removes the collider with the given ID. It returns false if no such collider exists.
func (w *World) RemoveBox(id uint64) bool {
	w.Lock()
	defer w.Unlock()

	if _, ok := w.colliders[id]; !ok {
		return false
	}
	delete(w.colliders, id)
	for index, other := range w.order {
		if other == id {
			w.order = append(w.order[:index], w.order[index+1:]...)
			break
		}
	}
	w.log.Debugf("world: removed collider %d", id)
	return true
}

// Len returns the amount of colliders in the world.
func (w *World) Len() int {
	w.RLock()
	defer w.RUnlock()
	return len(w.order)
}

// Line returns the distance from start to the first collider in mask that the segment between start and end
// hits. A segment that starts inside a collider hits it at distance zero.
func (w *World) Line(start, end mgl32.Vec3, mask game.Layer) (float32, bool) {
	w.RLock()
	defer w.RUnlock()

	var (
		nearest float32
		hit     bool
	)
	for _, id := range w.order {
		c := w.colliders[id]
		if !c.Layer.Matches(mask) {
			continue
		}

		var dist float32
		if c.Box.Vec3Within(start) {
			dist = 0
		} else if result, ok := trace.BBoxIntercept(c.Box, start, end); ok {
			dist = result.Position().Sub(start).Len()
		} else {
			continue
		}

		if !hit || dist < nearest {
			nearest, hit = dist, true
		}
	}
	return nearest, hit
}

// SphereOverlap returns true if any collider in mask intersects the sphere. Touching the surface counts as an
// overlap.
func (w *World) SphereOverlap(center mgl32.Vec3, radius float32, mask game.Layer) bool {
	w.RLock()
	defer w.RUnlock()

	for _, id := range w.order {
		c := w.colliders[id]
		if c.Layer.Matches(mask) && game.AABBVectorDistance(c.Box, center) <= radius {
			return true
		}
	}
	return false
}

// NearbyBoxes returns the boxes of all colliders in mask that intersect the given box.
func (w *World) NearbyBoxes(bb cube.BBox, mask game.Layer) []cube.BBox {
	w.RLock()
	defer w.RUnlock()

	var boxes []cube.BBox
	for _, id := range w.order {
		c := w.colliders[id]
		if c.Layer.Matches(mask) && c.Box.IntersectsWith(bb) {
			boxes = append(boxes, c.Box)
		}
	}
	return boxes
}
