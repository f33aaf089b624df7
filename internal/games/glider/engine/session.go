package engine

import (
	"math/rand"

	"github.com/vovakirdan/glider/internal/config"
	"github.com/vovakirdan/glider/internal/core"
)

// TickResult is the outcome of one Session.Tick.
type TickResult struct {
	Scene  Scene
	Events []core.Event
}

// Session runs one simulation: it owns the body, trail, obstacles and state
// machine and advances them once per Tick. It is not safe for concurrent use.
type Session struct {
	cfg        config.GliderConfig
	field      Field
	fieldValid bool

	body      Body
	trail     []TrailPoint
	obstacles []Obstacle
	distance  float64
	intent    bool
	ticks     uint64

	state      *StateMachine
	difficulty *config.DifficultyManager
	generator  Generator
	detector   *Detector
	integrator *Integrator

	last Scene
}

// NewSession creates an idle session with full life. A non-positive field
// leaves the session paused until Resize supplies a valid one.
func NewSession(cfg config.GliderConfig, field Field, seed int64) *Session {
	diff := config.NewDifficultyManager(cfg.Difficulty)
	s := &Session{
		cfg:        cfg,
		state:      NewStateMachine(cfg.Game.Lives),
		difficulty: diff,
		generator:  NewGenerator(cfg, diff, rand.New(rand.NewSource(seed))),
		detector:   NewDetector(cfg),
		integrator: NewIntegrator(cfg.Physics),
	}
	s.Resize(field.W, field.H)
	return s
}

// Resize applies a new field size. Non-positive sizes suspend ticking. A
// changed valid size keeps life, score and phase but drops obstacles and
// the trail and re-centres the body, since old gaps may no longer fit.
func (s *Session) Resize(w, h float64) {
	f := Field{W: w, H: h}
	if !f.Valid() {
		s.fieldValid = false
		return
	}
	if s.fieldValid && f == s.field {
		return
	}
	s.field = f
	s.fieldValid = true
	s.obstacles = nil
	s.trail = nil
	s.body.Offset = 0
	s.last = s.buildScene()
}

// SetFlyingIntent records the flying intent. A rising edge while Idle starts
// a new attempt.
func (s *Session) SetFlyingIntent(on bool) []core.Event {
	rising := on && !s.intent
	s.intent = on
	s.body.Flying = on
	if !rising {
		return nil
	}
	events, started := s.state.Start()
	if started {
		s.resetRound()
	}
	return events
}

// Restart refills life after game over and returns to Idle with an empty world.
func (s *Session) Restart() {
	s.state.Reset()
	s.resetRound()
	s.intent = false
	s.body.Flying = false
	if s.fieldValid {
		s.last = s.buildScene()
	}
}

// resetRound puts the body, trail, obstacles and distance back to their
// initial values.
func (s *Session) resetRound() {
	s.body = Body{Flying: s.intent}
	s.trail = nil
	s.obstacles = nil
	s.distance = 0
}

// Tick advances the simulation by one frame. The scene reflects the state
// before this tick's physics; on a collision it carries the reduced life and
// new phase.
func (s *Session) Tick() TickResult {
	if !s.fieldValid || s.state.Phase() == PhaseGameOver {
		return TickResult{Scene: s.last}
	}
	s.ticks++

	scene := s.buildScene()
	s.last = scene
	if s.state.Phase() != PhaseFlying {
		return TickResult{Scene: scene}
	}

	if hit := s.detector.Check(s.body, s.obstacles, s.field); hit != HitNone {
		events := s.state.Collide(hit)
		s.last.Life = s.state.Life()
		s.last.Phase = s.state.Phase()
		return TickResult{Scene: s.last, Events: events}
	}

	s.body.Flying = s.intent
	body, trail, step := s.integrator.Step(s.body, s.trail, s.field)
	s.body, s.trail = body, trail
	s.distance += step.X

	var events []core.Event
	bodyX := s.bodyPosition().X
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if s.detector.Crossed(bodyX, *o, step) {
			o.Passed = true
			events = append(events, s.state.AddScore(1)...)
		}
		o.X -= step.X
	}

	s.ageObstacles()
	return TickResult{Scene: scene, Events: events}
}

// ageObstacles drops obstacles that left the field and spawns a new one
// once the rightmost is within spawn range of the right edge.
func (s *Session) ageObstacles() {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Trailing() > 0 {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	var prev *Obstacle
	rightmost := 0.0
	if n := len(s.obstacles); n > 0 {
		prev = &s.obstacles[n-1]
		rightmost = prev.X
	}
	if rightmost < s.field.W-s.cfg.Obstacles.SpawnLead {
		s.obstacles = append(s.obstacles, s.generator.Generate(prev, s.field, s.state.Score()))
	}
}

func (s *Session) bodyPosition() Vec {
	return s.body.Position(s.field, s.cfg.Body.AnchorX)
}

// SetBestScore seeds the best score from persistent storage.
func (s *Session) SetBestScore(n int) {
	s.state.SetBestScore(n)
	s.last.BestScore = s.state.BestScore()
}

// Last returns the most recently built scene.
func (s *Session) Last() Scene { return s.last }

func (s *Session) Phase() Phase { return s.state.Phase() }
func (s *Session) Life() int { return s.state.Life() }
func (s *Session) Score() int { return s.state.Score() }
func (s *Session) BestScore() int { return s.state.BestScore() }
func (s *Session) Body() Body { return s.body }
func (s *Session) Field() Field { return s.field }
func (s *Session) FieldValid() bool { return s.fieldValid }
func (s *Session) Distance() float64 { return s.distance }
func (s *Session) Ticks() uint64 { return s.ticks }
func (s *Session) Config() config.GliderConfig { return s.cfg }

// Obstacles returns a copy of the live obstacles, leftmost first.
func (s *Session) Obstacles() []Obstacle {
	return append([]Obstacle(nil), s.obstacles...)
}

// Trail returns a copy of the trail, most recent first.
func (s *Session) Trail() []TrailPoint {
	return append([]TrailPoint(nil), s.trail...)
}

// DifficultyLevel returns the current difficulty level (0.0 to 1.0).
func (s *Session) DifficultyLevel() float64 {
	return s.difficulty.Level(s.state.Score())
}
