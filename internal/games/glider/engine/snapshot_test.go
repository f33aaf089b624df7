package engine

import (
	"testing"

	"github.com/vovakirdan/glider/internal/config"
)

func TestSnapshotCapturesState(t *testing.T) {
	s := startedSession(config.DefaultGliderConfig(), testField, 8)
	pilot := NewAutopilot()
	for range 120 {
		pilot.Drive(s)
	}

	snap := s.Snapshot()
	if snap.Tick != s.Ticks() || snap.Life != s.Life() || snap.Score != s.Score() {
		t.Errorf("snapshot header %+v does not match session", snap)
	}
	if len(snap.TrailData) != 2*len(s.Trail()) {
		t.Errorf("trail data length %d, want %d", len(snap.TrailData), 2*len(s.Trail()))
	}
	if len(snap.ObstacleData) != 5*len(s.Obstacles()) {
		t.Errorf("obstacle data length %d, want %d", len(snap.ObstacleData), 5*len(s.Obstacles()))
	}
}

func TestSnapshotHashSensitivity(t *testing.T) {
	s := startedSession(config.DefaultGliderConfig(), testField, 8)
	s.Tick()

	base := s.Snapshot()
	h := base.Hash()
	if again := s.Snapshot(); again.Hash() != h {
		t.Fatal("hash not stable for an unchanged session")
	}

	changed := base
	changed.Angle += 1e-12
	if changed.Hash() == h {
		t.Error("hash ignored a tiny angle change")
	}

	changed = base
	changed.ObstacleData = append([]float64(nil), base.ObstacleData...)
	changed.ObstacleData[0]++
	if changed.Hash() == h {
		t.Error("hash ignored an obstacle change")
	}
}
