package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/game"
	"github.com/oomph-ac/orbit/utils"
)

// Body is a kinematic box that moves through a World, sliding along the colliders it touches. Its position
// is the centre of the bottom face of the box.
type Body struct {
	World *World

	Width, Height float32
	// StepHeight is the tallest ledge the body climbs without jumping. Zero disables stepping.
	StepHeight float32
	Mask       game.Layer
}

// BoundingBox returns the box of the body at the given position.
func (b Body) BoundingBox(pos mgl32.Vec3) cube.BBox {
	return game.AABBFromDimensions(b.Width, b.Height).Translate(pos)
}

// Move attempts to move the body at pos by disp and returns the displacement that was actually realized. The
// result never carries the body past a contact: blocked axes are clipped at the surface and the remaining axes
// keep their full motion.
func (b Body) Move(pos, disp mgl32.Vec3) mgl32.Vec3 {
	if b.World == nil || disp.LenSqr() == 0 {
		return disp
	}

	collisionBB := b.BoundingBox(pos)
	region := collisionBB.Extend(disp)
	if b.StepHeight > 0 {
		region = region.Extend(mgl32.Vec3{0, b.StepHeight})
	}
	bbList := b.World.NearbyBoxes(region, b.Mask)
	if len(bbList) == 0 {
		return disp
	}

	// embedded collects how deep the body already sits inside colliders before moving.
	var embedded mgl32.Vec3
	yVel := sweep(bbList, collisionBB, mgl32.Vec3{0, disp.Y()}, false, &embedded)
	collisionBB = collisionBB.Translate(yVel)
	xVel := sweep(bbList, collisionBB, mgl32.Vec3{disp.X()}, false, &embedded)
	collisionBB = collisionBB.Translate(xVel)
	zVel := sweep(bbList, collisionBB, mgl32.Vec3{0, 0, disp.Z()}, false, &embedded)
	collisionVel := yVel.Add(xVel).Add(zVel)

	if embedded.LenSqr() > 0 {
		// A body pushed out of geometry this tick has no reliable footing to step from.
		b.World.log.Debugf("world: body at %v depenetrated by %v", game.RoundVec32(pos, 3), game.RoundVec32(embedded, 4))
		return collisionVel
	}

	xCollision := disp.X() != collisionVel.X()
	yCollision := disp.Y() != collisionVel.Y()
	zCollision := disp.Z() != collisionVel.Z()
	supported := yCollision && disp.Y() < 0

	if b.StepHeight > 0 && supported && (xCollision || zCollision) {
		if stepVel, ok := b.step(pos, disp, bbList); ok && game.Vec3HzDistSqr(collisionVel) < game.Vec3HzDistSqr(stepVel) {
			return stepVel
		}
	}
	return collisionVel
}

// step retries a horizontally blocked move from StepHeight above pos and settles the body back down onto
// whatever it stepped onto.
func (b Body) step(pos, disp mgl32.Vec3, bbList []cube.BBox) (mgl32.Vec3, bool) {
	stepBB := b.BoundingBox(pos)
	stepYVel := sweep(bbList, stepBB, mgl32.Vec3{0, b.StepHeight}, true, nil)
	stepBB = stepBB.Translate(stepYVel)
	stepXVel := sweep(bbList, stepBB, mgl32.Vec3{disp.X()}, true, nil)
	stepBB = stepBB.Translate(stepXVel)
	stepZVel := sweep(bbList, stepBB, mgl32.Vec3{0, 0, disp.Z()}, true, nil)
	stepBB = stepBB.Translate(stepZVel)

	// Settle back down by at most the height climbed plus the requested downwards motion.
	settle := sweep(bbList, stepBB, mgl32.Vec3{0, -stepYVel.Y() + math32.Min(disp.Y(), 0)}, true, nil)
	stepBB = stepBB.Translate(settle)
	stepYVel = stepYVel.Add(settle)

	if len(b.World.NearbyBoxes(stepBB.Grow(-1e-4), b.Mask)) != 0 {
		return mgl32.Vec3{}, false
	}
	return stepYVel.Add(stepXVel).Add(stepZVel), true
}

// sweep clips a single-axis velocity of bb against every box in turn. Unless oneWay is set, a box that already
// overlaps bb pushes it out, and the deepest overlap seen per axis is recorded in embedded if it is non-nil.
func sweep(boxes []cube.BBox, bb cube.BBox, vel mgl32.Vec3, oneWay bool, embedded *mgl32.Vec3) mgl32.Vec3 {
	for index := len(boxes) - 1; index >= 0; index-- {
		clip := utils.ClipBox(boxes[index], bb, vel)
		if oneWay {
			vel = clip.Velocity
			continue
		}
		vel = clip.Depenetration
		if embedded != nil && clip.Penetration > embedded[clip.Axis] {
			embedded[clip.Axis] = clip.Penetration
		}
	}
	return vel
}
