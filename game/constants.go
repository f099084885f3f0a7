package game

import "github.com/go-gl/mathgl/mgl32"

const (
	// Epsilon is the threshold under which input magnitudes and cross products are treated as zero.
	Epsilon = float32(1e-6)
	// StandardGravity is the downwards acceleration before the gravity multiplier is applied.
	StandardGravity = float32(-9.81)

	DefaultMaxSpeed                = float32(10)
	DefaultTurnRate                = float32(720)
	DefaultJumpHeight              = float32(2)
	DefaultGravityMultiplier       = float32(3)
	DefaultGroundStickAcceleration = float32(2)
	DefaultGroundProbeHeight       = float32(0.2)
	DefaultGroundProbeRadius       = float32(0.3)
	DefaultBodyWidth               = float32(0.6)
	DefaultBodyHeight              = float32(1.8)
	DefaultStepHeight              = float32(0.3)

	DefaultMinDistance     = float32(0.5)
	DefaultMaxDistance     = float32(10)
	DefaultInitialDistance = float32(5)
	DefaultMinPitch        = float32(10)
	DefaultMaxPitch        = float32(80)
	DefaultSensitivity     = float32(1)
	DefaultZoomSpeed       = float32(1)

	DefaultHistorySize = 64
)

// Up is the world up axis.
var Up = mgl32.Vec3{0, 1, 0}
