package utils

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func TestClipBox(t *testing.T) {
	floor := cube.Box(-5, -1, -5, 5, 0, 5)
	body := cube.Box(-0.3, 0.5, -0.3, 0.3, 2.3, 0.3)

	tests := []struct {
		name string
		vel  mgl32.Vec3
		want mgl32.Vec3
	}{
		{"falling onto the floor is clipped", mgl32.Vec3{0, -2, 0}, mgl32.Vec3{0, -0.5, 0}},
		{"falling short of the floor is kept", mgl32.Vec3{0, -0.25, 0}, mgl32.Vec3{0, -0.25, 0}},
		{"moving away is kept", mgl32.Vec3{0, 3, 0}, mgl32.Vec3{0, 3, 0}},
		{"moving along the floor is kept", mgl32.Vec3{4, 0, 0}, mgl32.Vec3{4, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := ClipBox(floor, body, tt.vel)
			if clip.Velocity.Sub(tt.want).Len() > 1e-5 || clip.Depenetration != clip.Velocity {
				t.Fatalf("expected %v, got %+v", tt.want, clip)
			}
			if clip.Penetration != 0 {
				t.Fatalf("expected separated boxes to report no penetration, got %v", clip.Penetration)
			}
		})
	}
}

func TestClipBoxApartOnTwoAxes(t *testing.T) {
	stationary := cube.Box(0, 0, 0, 1, 1, 1)
	moving := cube.Box(2, 2, 0, 3, 3, 1)

	// Moving along X alone can never reach a box that is also above it.
	if clip := ClipBox(stationary, moving, mgl32.Vec3{-5, 0, 0}); clip.Velocity != (mgl32.Vec3{-5, 0, 0}) {
		t.Fatalf("expected the velocity to be untouched, got %v", clip.Velocity)
	}
}

func TestClipBoxOverlap(t *testing.T) {
	floor := cube.Box(-5, -1, -5, 5, 0, 5)
	sunk := cube.Box(-0.3, -0.25, -0.3, 0.3, 1.55, 0.3)

	clip := ClipBox(floor, sunk, mgl32.Vec3{0, -1, 0})
	if clip.Velocity != (mgl32.Vec3{0, -1, 0}) {
		t.Fatalf("expected the clipped velocity to leave an overlap alone, got %v", clip.Velocity)
	}
	if math32.Abs(clip.Depenetration.Y()-0.25) > 1e-5 {
		t.Fatalf("expected the box to be pushed out by 0.25, got %v", clip.Depenetration)
	}
	if clip.Axis != 1 || math32.Abs(clip.Penetration-0.25) > 1e-5 {
		t.Fatalf("expected a vertical penetration of 0.25, got %v along axis %d", clip.Penetration, clip.Axis)
	}
}

func TestBBHasZeroVolume(t *testing.T) {
	if !BBHasZeroVolume(cube.Box(1, 1, 1, 1, 1, 1)) {
		t.Fatalf("expected a point box to have zero volume")
	}
	if BBHasZeroVolume(cube.Box(0, 0, 0, 1, 1, 1)) {
		t.Fatalf("expected a unit box to have volume")
	}
}
