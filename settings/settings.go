package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/oomph-ac/orbit/game"
	"github.com/oomph-ac/orbit/oerror"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable that overrides a setting, for example
// ORBIT_LOCOMOTION_MAX_SPEED.
const EnvPrefix = "ORBIT_"

// Settings contains every tunable of the locomotion controller, the camera rig and the simulation driving them.
type Settings struct {
	Locomotion Locomotion `toml:"locomotion" yaml:"locomotion" envPrefix:"LOCOMOTION_"`
	Camera     Camera     `toml:"camera" yaml:"camera" envPrefix:"CAMERA_"`
	Simulation Simulation `toml:"simulation" yaml:"simulation" envPrefix:"SIMULATION_"`
	Log        Log        `toml:"log" yaml:"log" envPrefix:"LOG_"`
}

// Locomotion holds the tunables of the character controller.
type Locomotion struct {
	// MaxSpeed is the horizontal speed in units per second at full move input.
	MaxSpeed float32 `toml:"max_speed" yaml:"max_speed" env:"MAX_SPEED"`
	// TurnRate is the fastest the character turns, in degrees per second.
	TurnRate          float32 `toml:"turn_rate" yaml:"turn_rate" env:"TURN_RATE"`
	JumpHeight        float32 `toml:"jump_height" yaml:"jump_height" env:"JUMP_HEIGHT"`
	GravityMultiplier float32 `toml:"gravity_multiplier" yaml:"gravity_multiplier" env:"GRAVITY_MULTIPLIER"`
	// GroundStickAcceleration is the small downwards velocity kept while grounded so that the ground probe
	// stays in contact.
	GroundStickAcceleration float32 `toml:"ground_stick_acceleration" yaml:"ground_stick_acceleration" env:"GROUND_STICK_ACCELERATION"`

	GroundProbeHeight float32 `toml:"ground_probe_height" yaml:"ground_probe_height" env:"GROUND_PROBE_HEIGHT"`
	GroundProbeRadius float32 `toml:"ground_probe_radius" yaml:"ground_probe_radius" env:"GROUND_PROBE_RADIUS"`
	GroundMask        uint32  `toml:"ground_mask" yaml:"ground_mask" env:"GROUND_MASK"`

	BodyWidth  float32 `toml:"body_width" yaml:"body_width" env:"BODY_WIDTH"`
	BodyHeight float32 `toml:"body_height" yaml:"body_height" env:"BODY_HEIGHT"`
	StepHeight float32 `toml:"step_height" yaml:"step_height" env:"STEP_HEIGHT"`
	BodyMask   uint32  `toml:"body_mask" yaml:"body_mask" env:"BODY_MASK"`
}

// Camera holds the tunables of the orbit camera rig.
type Camera struct {
	MinDistance     float32 `toml:"min_distance" yaml:"min_distance" env:"MIN_DISTANCE"`
	MaxDistance     float32 `toml:"max_distance" yaml:"max_distance" env:"MAX_DISTANCE"`
	InitialDistance float32 `toml:"initial_distance" yaml:"initial_distance" env:"INITIAL_DISTANCE"`
	MinPitch        float32 `toml:"min_pitch" yaml:"min_pitch" env:"MIN_PITCH"`
	MaxPitch        float32 `toml:"max_pitch" yaml:"max_pitch" env:"MAX_PITCH"`

	HorizontalSensitivity float32 `toml:"horizontal_sensitivity" yaml:"horizontal_sensitivity" env:"HORIZONTAL_SENSITIVITY"`
	VerticalSensitivity   float32 `toml:"vertical_sensitivity" yaml:"vertical_sensitivity" env:"VERTICAL_SENSITIVITY"`
	ZoomSpeed             float32 `toml:"zoom_speed" yaml:"zoom_speed" env:"ZOOM_SPEED"`

	CollisionMask uint32 `toml:"collision_mask" yaml:"collision_mask" env:"COLLISION_MASK"`
}

// Simulation holds settings of the tick driver.
type Simulation struct {
	// HistorySize is the amount of past tick snapshots kept for inspection.
	HistorySize int `toml:"history_size" yaml:"history_size" env:"HISTORY_SIZE"`
}

// Log holds logging settings.
type Log struct {
	Level string `toml:"level" yaml:"level" env:"LEVEL"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Locomotion = Locomotion{
		MaxSpeed:                game.DefaultMaxSpeed,
		TurnRate:                game.DefaultTurnRate,
		JumpHeight:              game.DefaultJumpHeight,
		GravityMultiplier:       game.DefaultGravityMultiplier,
		GroundStickAcceleration: game.DefaultGroundStickAcceleration,
		GroundProbeHeight:       game.DefaultGroundProbeHeight,
		GroundProbeRadius:       game.DefaultGroundProbeRadius,
		GroundMask:              uint32(game.LayerDefault | game.LayerGround),
		BodyWidth:               game.DefaultBodyWidth,
		BodyHeight:              game.DefaultBodyHeight,
		StepHeight:              game.DefaultStepHeight,
		BodyMask:                uint32(game.LayerDefault | game.LayerGround),
	}
	s.Camera = Camera{
		MinDistance:           game.DefaultMinDistance,
		MaxDistance:           game.DefaultMaxDistance,
		InitialDistance:       game.DefaultInitialDistance,
		MinPitch:              game.DefaultMinPitch,
		MaxPitch:              game.DefaultMaxPitch,
		HorizontalSensitivity: game.DefaultSensitivity,
		VerticalSensitivity:   game.DefaultSensitivity,
		ZoomSpeed:             game.DefaultZoomSpeed,
		CollisionMask:         uint32(game.LayerDefault | game.LayerCameraBlocking),
	}
	s.Simulation.HistorySize = game.DefaultHistorySize
	s.Log.Level = "info"
	return s
}

// Gravity returns the vertical acceleration applied to the character. It is negative.
func (l Locomotion) Gravity() float32 {
	return game.StandardGravity * l.GravityMultiplier
}

// Clamp forces every tunable into its supported range. Cross-field constraints are left to Validate.
func (s *Settings) Clamp() {
	l := &s.Locomotion
	l.MaxSpeed = game.ClampFloat(l.MaxSpeed, 0, 10000)
	l.TurnRate = game.ClampFloat(l.TurnRate, 0, 180000)
	l.JumpHeight = game.ClampFloat(l.JumpHeight, 0, 10)
	l.GravityMultiplier = game.ClampFloat(l.GravityMultiplier, 0, 10)
	l.GroundStickAcceleration = game.ClampFloat(l.GroundStickAcceleration, 0, 10)
	l.GroundProbeRadius = game.ClampFloat(l.GroundProbeRadius, 0, 1)
	l.BodyWidth = game.ClampFloat(l.BodyWidth, 0.01, 100)
	l.BodyHeight = game.ClampFloat(l.BodyHeight, 0.01, 100)
	l.StepHeight = game.ClampFloat(l.StepHeight, 0, l.BodyHeight)

	c := &s.Camera
	c.MinDistance = game.ClampFloat(c.MinDistance, 0, 10)
	c.MaxDistance = game.ClampFloat(c.MaxDistance, 0, 50)
	c.MinPitch = game.ClampFloat(c.MinPitch, 0, 90)
	c.MaxPitch = game.ClampFloat(c.MaxPitch, 0, 90)
	c.HorizontalSensitivity = game.ClampFloat(c.HorizontalSensitivity, 0, 5)
	c.VerticalSensitivity = game.ClampFloat(c.VerticalSensitivity, 0, 5)
	c.ZoomSpeed = game.ClampFloat(c.ZoomSpeed, 0, 5)
	c.InitialDistance = game.ClampFloat(c.InitialDistance, c.MinDistance, c.MaxDistance)

	if s.Simulation.HistorySize < 1 {
		s.Simulation.HistorySize = 1
	}
}

// Validate returns an error if the settings cannot describe a sensible character or camera. The tick loop
// still clamps into whatever range is configured, so invalid settings degrade rather than crash.
func (s Settings) Validate() error {
	values := []struct {
		name string
		v    float32
	}{
		{"locomotion.max_speed", s.Locomotion.MaxSpeed},
		{"locomotion.turn_rate", s.Locomotion.TurnRate},
		{"locomotion.jump_height", s.Locomotion.JumpHeight},
		{"locomotion.gravity_multiplier", s.Locomotion.GravityMultiplier},
		{"locomotion.ground_stick_acceleration", s.Locomotion.GroundStickAcceleration},
		{"locomotion.ground_probe_height", s.Locomotion.GroundProbeHeight},
		{"locomotion.ground_probe_radius", s.Locomotion.GroundProbeRadius},
		{"locomotion.body_width", s.Locomotion.BodyWidth},
		{"locomotion.body_height", s.Locomotion.BodyHeight},
		{"locomotion.step_height", s.Locomotion.StepHeight},
		{"camera.min_distance", s.Camera.MinDistance},
		{"camera.max_distance", s.Camera.MaxDistance},
		{"camera.initial_distance", s.Camera.InitialDistance},
		{"camera.min_pitch", s.Camera.MinPitch},
		{"camera.max_pitch", s.Camera.MaxPitch},
		{"camera.horizontal_sensitivity", s.Camera.HorizontalSensitivity},
		{"camera.vertical_sensitivity", s.Camera.VerticalSensitivity},
		{"camera.zoom_speed", s.Camera.ZoomSpeed},
	}
	for _, value := range values {
		if !game.IsFinite(value.v) {
			return oerror.New("settings: %s is not a finite number", value.name)
		}
	}

	switch {
	case s.Locomotion.JumpHeight < 0:
		return oerror.New("settings: locomotion.jump_height must not be negative (got %v)", s.Locomotion.JumpHeight)
	case s.Locomotion.GroundStickAcceleration < 0:
		return oerror.New("settings: locomotion.ground_stick_acceleration must not be negative (got %v)", s.Locomotion.GroundStickAcceleration)
	case s.Camera.MinDistance > s.Camera.MaxDistance:
		return oerror.New("settings: camera.min_distance %v exceeds camera.max_distance %v", s.Camera.MinDistance, s.Camera.MaxDistance)
	case s.Camera.MinPitch > s.Camera.MaxPitch:
		return oerror.New("settings: camera.min_pitch %v exceeds camera.max_pitch %v", s.Camera.MinPitch, s.Camera.MaxPitch)
	case s.Simulation.HistorySize < 1:
		return oerror.New("settings: simulation.history_size must be at least 1 (got %d)", s.Simulation.HistorySize)
	}
	return nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.New("settings file already exists")
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed checking settings file: %w", err)
	}

	data, err := encode(path, DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file on top of the defaults, apply environment overrides,
// clamp and validate the result. Files ending in .yaml or .yml are decoded as YAML, anything else as TOML.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	s := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, &s)
	} else {
		err = toml.Unmarshal(data, &s)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	return finish(s)
}

// FromEnv returns the default settings with environment overrides applied, clamped and validated.
func FromEnv() (Settings, error) {
	return finish(DefaultSettings())
}

func finish(s Settings) (Settings, error) {
	if err := ApplyEnv(&s); err != nil {
		return Settings{}, err
	}
	s.Clamp()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ApplyEnv overrides settings with any ORBIT_ prefixed environment variables that are set.
func ApplyEnv(s *Settings) error {
	if err := env.ParseWithOptions(s, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error parsing settings from environment: %w", err)
	}
	return nil
}

func encode(path string, s Settings) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(s)
	}
	return toml.Marshal(s)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
