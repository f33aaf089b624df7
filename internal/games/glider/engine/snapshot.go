package engine

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the session state for replay checks.
type Snapshot struct {
	Tick      uint64
	Phase     int
	Life      int
	Score     int
	BestScore int
	Intent    bool

	Angle    float64
	Offset   float64
	Distance float64
	FieldW   float64
	FieldH   float64

	// Each trail point is 2 floats: X, Y
	TrailData []float64

	// Each obstacle is 5 floats: X, Y1, Y2, Width, Passed
	ObstacleData []float64
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	trail := make([]float64, 0, len(s.trail)*2)
	for _, p := range s.trail {
		trail = append(trail, p.X, p.Y)
	}

	obstacles := make([]float64, 0, len(s.obstacles)*5)
	for _, o := range s.obstacles {
		passed := 0.0
		if o.Passed {
			passed = 1
		}
		obstacles = append(obstacles, o.X, o.Y1, o.Y2, o.Width, passed)
	}

	return Snapshot{
		Tick:         s.ticks,
		Phase:        int(s.state.Phase()),
		Life:         s.state.Life(),
		Score:        s.state.Score(),
		BestScore:    s.state.BestScore(),
		Intent:       s.intent,
		Angle:        s.body.Angle,
		Offset:       s.body.Offset,
		Distance:     s.distance,
		FieldW:       s.field.W,
		FieldH:       s.field.H,
		TrailData:    trail,
		ObstacleData: obstacles,
	}
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}
	putI := func(v int) { putU(uint64(v)) } //#nosec G115 -- hash computation
	putF := func(v float64) { putU(math.Float64bits(v)) }

	putU(snap.Tick)
	putI(snap.Phase)
	putI(snap.Life)
	putI(snap.Score)
	putI(snap.BestScore)
	if snap.Intent {
		putU(1)
	} else {
		putU(0)
	}
	putF(snap.Angle)
	putF(snap.Offset)
	putF(snap.Distance)
	putF(snap.FieldW)
	putF(snap.FieldH)

	putI(len(snap.TrailData))
	for _, v := range snap.TrailData {
		putF(v)
	}
	putI(len(snap.ObstacleData))
	for _, v := range snap.ObstacleData {
		putF(v)
	}

	return h.Sum64()
}
