// Package audio plays short synthesized effects in response to glider state
// events. Sound is best effort: a machine without an audio device still plays
// the game.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/glider/internal/core"
)

// DefaultVolume is the gain applied to every effect.
const DefaultVolume = 0.5

// Manager mixes effects into a single speaker stream. It implements
// core.Observer and is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	mixer     *beep.Mixer
	volume    float64
	muted     bool
	output    bool // mixer is attached to the speaker
	announced bool // new best already played this round
	played    []Sound
}

// NewManager creates a manager with no output. Call Initialize to attach it
// to the speaker; until then effects are mixed but never heard.
func NewManager() *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: DefaultVolume,
	}
}

// Initialize opens the speaker and starts streaming the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.output {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.output = true
	return nil
}

// Close stops every playing effect.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.output {
		return
	}
	speaker.Clear()
	m.output = false
}

// SetMuted turns playback off or on.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports whether playback is off.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// SetVolume sets the gain (0..1) for effects played from now on.
func (m *Manager) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = max(0, min(1, v))
}

// Play queues an effect on the mixer.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.muted {
		return
	}
	streamer := Effect(s, m.volume)
	if streamer == nil {
		return
	}
	m.played = append(m.played, s)

	if m.output {
		speaker.Lock()
		m.mixer.Add(streamer)
		speaker.Unlock()
		return
	}
	m.mixer.Add(streamer)
}

// Played returns the effects queued so far, oldest first.
func (m *Manager) Played() []Sound {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Sound(nil), m.played...)
}

// Pending returns how many effects are still in the mixer.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.output {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return m.mixer.Len()
}

// Drain streams the mixer without a speaker and returns the number of
// samples produced before it emptied, up to limit.
func (m *Manager) Drain(limit int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.output {
		return 0
	}

	buf := make([][2]float64, 512)
	total := 0
	for total < limit && m.mixer.Len() > 0 {
		n, _ := m.mixer.Stream(buf)
		total += n
	}
	return total
}

// OnRoundStart implements core.Observer.
func (m *Manager) OnRoundStart() {
	m.mu.Lock()
	m.announced = false
	m.mu.Unlock()
	m.Play(SoundStart)
}

// OnCollision implements core.Observer.
func (m *Manager) OnCollision(int) {
	m.Play(SoundCrash)
}

// OnGameOver implements core.Observer.
func (m *Manager) OnGameOver(int) {
	m.Play(SoundGameOver)
}

// OnNewBestScore implements core.Observer. Only the first new best of a
// round is announced.
func (m *Manager) OnNewBestScore(int) {
	m.mu.Lock()
	if m.announced {
		m.mu.Unlock()
		return
	}
	m.announced = true
	m.mu.Unlock()
	m.Play(SoundBest)
}

var _ core.Observer = (*Manager)(nil)
