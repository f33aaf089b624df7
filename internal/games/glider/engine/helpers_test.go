package engine

import (
	"math"

	"github.com/vovakirdan/glider/internal/config"
)

var testField = Field{W: 800, H: 460}

// constantConfig returns the defaults with a constant speed so step
// vectors are predictable.
func constantConfig(speed float64) config.GliderConfig {
	cfg := config.DefaultGliderConfig()
	cfg.Physics.VelocityModel = config.VelocityConstant
	cfg.Physics.Speed = speed
	return cfg
}

// startedSession returns a session with a round in flight and the intent released.
func startedSession(cfg config.GliderConfig, field Field, seed int64) *Session {
	s := NewSession(cfg, field, seed)
	s.SetFlyingIntent(true)
	s.SetFlyingIntent(false)
	return s
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
