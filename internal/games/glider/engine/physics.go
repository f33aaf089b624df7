package engine

import (
	"math"

	"github.com/vovakirdan/glider/internal/config"
)

// Integrator advances the body and its trail by one tick.
type Integrator struct {
	cfg config.GliderPhysics
}

// NewIntegrator creates an integrator for the given physics settings.
func NewIntegrator(cfg config.GliderPhysics) *Integrator {
	return &Integrator{cfg: cfg}
}

// Speed returns the step length for the body's current altitude.
func (in *Integrator) Speed(body Body, field Field) float64 {
	if in.cfg.VelocityModel != config.VelocityAltitude {
		return in.cfg.Speed
	}
	vMin, vMax := in.cfg.MinSpeed, in.cfg.MaxSpeed
	if field.H <= 0 {
		return vMin
	}
	// Lower on screen is faster.
	r := clampF((field.H/2+body.Offset)/field.H, 0, 1)
	return math.Sqrt(vMin*vMin + r*(vMax*vMax-vMin*vMin))
}

// Step moves the body along its prior heading and updates the heading:
// flying integrates a fixed pitch-up increment, gliding snaps the heading
// to the step direction plus the glide bias. The trail gets a new head at
// the body and older points shift by -step. Inputs are not modified.
func (in *Integrator) Step(body Body, trail []TrailPoint, field Field) (Body, []TrailPoint, Vec) {
	v := in.Speed(body, field)
	step := Vec{X: v * math.Cos(body.Angle), Y: v * math.Sin(body.Angle)}

	next := body
	next.Offset += step.Y
	if body.Flying {
		next.Angle = body.Angle + in.cfg.RotateUp
	} else {
		next.Angle = math.Atan2(step.Y+in.cfg.GlideBias, step.X)
	}

	return next, advanceTrail(trail, step, in.cfg.HistoryLen), step
}

// advanceTrail prepends the origin, translates older points by -step and
// truncates at limit.
func advanceTrail(trail []TrailPoint, step Vec, limit int) []TrailPoint {
	if limit < 1 {
		limit = 1
	}
	n := min(len(trail)+1, limit)
	next := make([]TrailPoint, n)
	for i := 1; i < n; i++ {
		p := trail[i-1]
		next[i] = TrailPoint{X: p.X - step.X, Y: p.Y - step.Y}
	}
	return next
}
