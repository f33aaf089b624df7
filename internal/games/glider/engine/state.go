package engine

import "github.com/vovakirdan/glider/internal/core"

// Phase is the state machine's phase.
type Phase int

const (
	PhaseIdle     Phase = iota // between attempts, waiting for a start intent
	PhaseFlying                // an attempt is in flight
	PhaseGameOver              // no attempts left
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFlying:
		return "flying"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// StateMachine owns life, score and the round phase.
type StateMachine struct {
	phase   Phase
	maxLife int
	life    int
	score   int
	best    int
}

// NewStateMachine creates an idle machine with full life.
func NewStateMachine(lives int) *StateMachine {
	return &StateMachine{
		phase:   PhaseIdle,
		maxLife: lives,
		life:    lives,
	}
}

// Start begins an attempt. It only fires from Idle with life left and
// reports whether the phase changed.
func (m *StateMachine) Start() ([]core.Event, bool) {
	if m.phase != PhaseIdle || m.life <= 0 {
		return nil, false
	}
	m.phase = PhaseFlying
	m.score = 0
	return []core.Event{{Kind: core.EventRoundStart}}, true
}

// Collide ends the current attempt. It is a no-op outside Flying, so one
// contact can only cost one life.
func (m *StateMachine) Collide(hit Hit) []core.Event {
	if m.phase != PhaseFlying || hit == HitNone {
		return nil
	}
	m.life--
	events := []core.Event{{Kind: core.EventCollision, Value: m.life}}
	if m.life <= 0 {
		m.phase = PhaseGameOver
		return append(events, core.Event{Kind: core.EventGameOver, Value: m.score})
	}
	m.phase = PhaseIdle
	return events
}

// AddScore adds n to the score and reports a new best if it was beaten.
func (m *StateMachine) AddScore(n int) []core.Event {
	if n <= 0 {
		return nil
	}
	m.score += n
	if m.score > m.best {
		m.best = m.score
		return []core.Event{{Kind: core.EventNewBestScore, Value: m.best}}
	}
	return nil
}

// SetBestScore seeds the persisted best score.
func (m *StateMachine) SetBestScore(n int) {
	if n > m.best {
		m.best = n
	}
}

// Reset restores full life and Idle, keeping the best score.
func (m *StateMachine) Reset() {
	m.phase = PhaseIdle
	m.life = m.maxLife
	m.score = 0
}

func (m *StateMachine) Phase() Phase { return m.phase }
func (m *StateMachine) Life() int { return m.life }
func (m *StateMachine) Score() int { return m.score }
func (m *StateMachine) BestScore() int { return m.best }
