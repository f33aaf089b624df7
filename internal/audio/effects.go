package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every effect is rendered at.
const SampleRate = beep.SampleRate(44100)

// Sound identifies a sound effect.
type Sound int

const (
	SoundStart    Sound = iota // rising chirp when an attempt begins
	SoundCrash                 // low buzz on collision
	SoundGameOver              // falling three-note phrase
	SoundBest                  // short ding on a new best score
)

func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundCrash:
		return "crash"
	case SoundGameOver:
		return "game_over"
	case SoundBest:
		return "best"
	default:
		return "unknown"
	}
}

// note is one enveloped sine tone.
type note struct {
	freq     float64
	duration time.Duration
}

var phrases = map[Sound][]note{
	SoundStart:    {{660, 60 * time.Millisecond}, {880, 80 * time.Millisecond}},
	SoundCrash:    {{140, 180 * time.Millisecond}},
	SoundGameOver: {{523.25, 140 * time.Millisecond}, {392, 140 * time.Millisecond}, {261.63, 260 * time.Millisecond}},
	SoundBest:     {{1318.51, 90 * time.Millisecond}},
}

// Effect builds a finite streamer for a sound at the given volume (0..1).
// It returns nil for an unknown sound.
func Effect(s Sound, volume float64) beep.Streamer {
	notes, ok := phrases[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			continue
		}
		total := SampleRate.N(n.duration)
		parts = append(parts, &envelope{
			streamer: beep.Take(total, tone),
			attack:   SampleRate.N(5 * time.Millisecond),
			release:  total / 3,
			total:    total,
		})
	}
	if len(parts) == 0 {
		return nil
	}
	return newVolume(beep.Seq(parts...), volume)
}

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. Zero gain is silent because
// effects.Volume works in log space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
