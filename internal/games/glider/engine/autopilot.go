package engine

import "math"

// Autopilot is a simple bang-bang pilot that aims the body at the centre of
// the next gap. It drives headless simulations and long-run tests.
type Autopilot struct {
	Lookahead float64 // ticks of travel used to predict altitude
	MaxPitch  float64 // never pitch up or dive past this angle
}

// NewAutopilot returns a pilot tuned for the default flight model.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 6, MaxPitch: 0.9}
}

// Target returns the altitude the pilot aims for: the centre of the first
// gap whose trailing edge is still ahead of the body, or the field centre.
func (a *Autopilot) Target(s *Session) float64 {
	bodyX := s.bodyPosition().X
	for _, o := range s.obstacles {
		if o.Trailing() > bodyX {
			return (o.Y1 + o.Y2) / 2
		}
	}
	return s.field.H / 2
}

// Decide returns the flying intent for the next tick.
func (a *Autopilot) Decide(s *Session) bool {
	if s.state.Phase() != PhaseFlying {
		// A fresh press starts the next attempt.
		return !s.intent
	}

	angle := s.body.Angle
	if angle < -a.MaxPitch {
		return false
	}
	if angle > a.MaxPitch {
		return true
	}

	v := s.integrator.Speed(s.body, s.field)
	predicted := s.bodyPosition().Y + v*math.Sin(angle)*a.Lookahead
	return predicted > a.Target(s)
}

// Drive feeds one decision into the session and ticks it.
func (a *Autopilot) Drive(s *Session) TickResult {
	events := s.SetFlyingIntent(a.Decide(s))
	res := s.Tick()
	if len(events) > 0 {
		res.Events = append(events, res.Events...)
	}
	return res
}
