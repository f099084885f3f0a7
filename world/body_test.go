package world

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/game"
)

func testBody(w *World, stepHeight float32) Body {
	return Body{World: w, Width: 0.6, Height: 1.8, StepHeight: stepHeight, Mask: game.LayerAll}
}

func floorWorld() *World {
	w := New(quietLogger())
	w.AddBox(cube.Box(-10, -1, -10, 10, 0, 10), game.LayerGround)
	return w
}

func TestMoveWithoutColliders(t *testing.T) {
	disp := mgl32.Vec3{1, -2, 3}
	if got := testBody(nil, 0).Move(mgl32.Vec3{}, disp); got != disp {
		t.Fatalf("expected a body without world to move freely, got %v", got)
	}
	if got := testBody(New(quietLogger()), 0).Move(mgl32.Vec3{}, disp); got != disp {
		t.Fatalf("expected an empty world to let the body move freely, got %v", got)
	}
}

func TestMoveLandsOnFloor(t *testing.T) {
	got := testBody(floorWorld(), 0).Move(mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0, -1, 0})
	if !nearVec(got, mgl32.Vec3{0, -0.5, 0}) {
		t.Fatalf("expected the fall to stop at the floor, got %v", got)
	}
}

func TestMoveSlidesAlongWall(t *testing.T) {
	w := floorWorld()
	w.AddBox(cube.Box(1, 0, -10, 2, 3, 10), game.LayerDefault)

	got := testBody(w, 0).Move(mgl32.Vec3{}, mgl32.Vec3{2, -0.1, 1})
	if !nearVec(got, mgl32.Vec3{0.7, 0, 1}) {
		t.Fatalf("expected the body to stop at the wall and keep sliding along Z, got %v", got)
	}
}

func TestMoveStepsOntoLedge(t *testing.T) {
	w := floorWorld()
	w.AddBox(cube.Box(0.5, 0, -1, 2, 0.25, 1), game.LayerDefault)

	got := testBody(w, 0.3).Move(mgl32.Vec3{}, mgl32.Vec3{0.5, -0.05, 0})
	if !nearVec(got, mgl32.Vec3{0.5, 0.25, 0}) {
		t.Fatalf("expected the body to step onto the ledge, got %v", got)
	}

	blocked := testBody(w, 0).Move(mgl32.Vec3{}, mgl32.Vec3{0.5, -0.05, 0})
	if !nearVec(blocked, mgl32.Vec3{0.2, 0, 0}) {
		t.Fatalf("expected the ledge to block a body that cannot step, got %v", blocked)
	}
}

func TestMoveDoesNotStepOntoTallWall(t *testing.T) {
	w := floorWorld()
	w.AddBox(cube.Box(0.5, 0, -1, 2, 3, 1), game.LayerDefault)

	got := testBody(w, 0.3).Move(mgl32.Vec3{}, mgl32.Vec3{0.5, -0.05, 0})
	if !nearVec(got, mgl32.Vec3{0.2, 0, 0}) {
		t.Fatalf("expected the wall to block the body, got %v", got)
	}
}

func TestMoveIgnoresMaskedColliders(t *testing.T) {
	w := floorWorld()
	w.AddBox(cube.Box(1, 0, -10, 2, 3, 10), game.LayerCameraBlocking)

	body := testBody(w, 0)
	body.Mask = game.LayerGround | game.LayerDefault
	got := body.Move(mgl32.Vec3{}, mgl32.Vec3{2, -0.1, 0})
	if !nearVec(got, mgl32.Vec3{2, 0, 0}) {
		t.Fatalf("expected camera-only geometry not to block the body, got %v", got)
	}
}

func TestMoveOutOfFloorDoesNotStep(t *testing.T) {
	w := floorWorld()
	w.AddBox(cube.Box(0.5, 0, -1, 2, 0.25, 1), game.LayerDefault)

	// Sunk 0.1 into the floor, the body is pushed back up and then stops at the ledge instead of climbing it.
	got := testBody(w, 0.3).Move(mgl32.Vec3{0, -0.1, 0}, mgl32.Vec3{0.5, -0.05, 0})
	if !nearVec(got, mgl32.Vec3{0.2, 0.1, 0}) {
		t.Fatalf("expected the body to be lifted out of the floor and blocked by the ledge, got %v", got)
	}
}
