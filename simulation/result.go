package simulation

import (
	"github.com/oomph-ac/orbit/camera"
	"github.com/oomph-ac/orbit/character"
)

// Snapshot captures the outcome of a single tick.
type Snapshot struct {
	Tick uint64
	DT   float32

	// Character is the ID of the followed character, or empty if the camera followed nothing this tick.
	Character      string
	CharacterState character.State

	Binding camera.Binding
	Camera  camera.State
}

// Followed returns true if a character was followed during the tick.
func (s Snapshot) Followed() bool {
	return s.Character != ""
}
