package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/oomph-ac/orbit/oerror"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected default settings to validate, got %v", err)
	}

	clamped := s
	clamped.Clamp()
	if clamped != s {
		t.Fatalf("expected defaults to already be within range, clamp changed them to %+v", clamped)
	}
}

func TestClamp(t *testing.T) {
	s := DefaultSettings()
	s.Locomotion.MaxSpeed = 1e6
	s.Locomotion.GroundProbeRadius = -1
	s.Locomotion.BodyHeight = 1
	s.Locomotion.StepHeight = 3
	s.Camera.MaxPitch = 120
	s.Camera.MaxDistance = 75
	s.Camera.InitialDistance = 60
	s.Simulation.HistorySize = 0
	s.Clamp()

	if s.Locomotion.MaxSpeed != 10000 || s.Locomotion.GroundProbeRadius != 0 {
		t.Fatalf("expected locomotion values to be clamped, got %+v", s.Locomotion)
	}
	if s.Locomotion.StepHeight != 1 {
		t.Fatalf("expected step height to be limited to the body height, got %v", s.Locomotion.StepHeight)
	}
	if s.Camera.MaxPitch != 90 || s.Camera.MaxDistance != 50 || s.Camera.InitialDistance != 50 {
		t.Fatalf("expected camera values to be clamped, got %+v", s.Camera)
	}
	if s.Simulation.HistorySize != 1 {
		t.Fatalf("expected history size of at least 1, got %d", s.Simulation.HistorySize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"inverted distance range", func(s *Settings) { s.Camera.MinDistance, s.Camera.MaxDistance = 8, 2 }},
		{"inverted pitch range", func(s *Settings) { s.Camera.MinPitch, s.Camera.MaxPitch = 60, 30 }},
		{"not a number", func(s *Settings) { s.Locomotion.TurnRate = math32.NaN() }},
		{"infinite", func(s *Settings) { s.Camera.ZoomSpeed = math32.Inf(1) }},
		{"negative jump height", func(s *Settings) { s.Locomotion.JumpHeight = -1 }},
		{"negative stick acceleration", func(s *Settings) { s.Locomotion.GroundStickAcceleration = -0.5 }},
		{"empty history", func(s *Settings) { s.Simulation.HistorySize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)

			err := s.Validate()
			var oerr *oerror.Error
			if !errors.As(err, &oerr) {
				t.Fatalf("expected an *oerror.Error, got %v", err)
			}
		})
	}
}

func TestSaveDefaultAndLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("failed saving default settings: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected saving over an existing file to fail")
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("failed loading settings: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("expected loaded settings to equal the defaults, got %+v", s)
	}
}

func TestSaveDefaultYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("failed saving default settings: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("failed loading settings: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("expected loaded settings to equal the defaults, got %+v", s)
	}
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yml")
	data := "camera:\n  max_distance: 20\nlocomotion:\n  turn_rate: 360\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("failed loading settings: %v", err)
	}
	want := DefaultSettings()
	want.Camera.MaxDistance = 20
	want.Locomotion.TurnRate = 360
	if s != want {
		t.Fatalf("expected %+v, got %+v", want, s)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	data := "camera:\n  min_distance: 8\n  max_distance: 2\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var oerr *oerror.Error
	if !errors.As(err, &oerr) {
		t.Fatalf("expected a validation error, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a wrapped not-exist error, got %v", err)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ORBIT_LOCOMOTION_MAX_SPEED", "12.5")
	t.Setenv("ORBIT_CAMERA_COLLISION_MASK", "4")
	t.Setenv("ORBIT_LOG_LEVEL", "debug")

	s, err := FromEnv()
	if err != nil {
		t.Fatalf("failed reading settings from the environment: %v", err)
	}
	if s.Locomotion.MaxSpeed != 12.5 || s.Camera.CollisionMask != 4 || s.Log.Level != "debug" {
		t.Fatalf("expected environment overrides to apply, got %+v", s)
	}

	t.Setenv("ORBIT_SIMULATION_HISTORY_SIZE", "many")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected a malformed environment value to fail")
	}
}

func TestGravity(t *testing.T) {
	l := DefaultSettings().Locomotion
	l.GravityMultiplier = 2
	if got := l.Gravity(); math32.Abs(got-(-19.62)) > 1e-4 {
		t.Fatalf("expected gravity -19.62, got %v", got)
	}
}
