package glider

import (
	"github.com/vovakirdan/glider/internal/core"
	"github.com/vovakirdan/glider/internal/games/glider/engine"
)

// SimReport summarizes a headless autopilot run.
type SimReport struct {
	Seed       int64
	Ticks      int
	Score      int // best round score reached in the run
	Distance   float64
	LivesLeft  int
	Collisions int
	GameOver   bool
	Hash       uint64 // snapshot hash of the final state
}

// Simulate flies a variant with the autopilot on a w x h cell terminal
// until game over or maxTicks. Events are forwarded to obs when not nil.
func Simulate(v Variant, w, h int, seed int64, maxTicks int, obs core.Observer) (SimReport, error) {
	cfg, err := LoadConfig(v)
	if err != nil {
		return SimReport{}, err
	}

	f := FieldForScreen(cfg, w, h)
	s := engine.NewSession(cfg, f, seed)
	pilot := engine.NewAutopilot()

	report := SimReport{Seed: seed}
	for report.Ticks < maxTicks && s.Phase() != engine.PhaseGameOver {
		res := pilot.Drive(s)
		report.Ticks++
		report.Distance = max(report.Distance, s.Distance())
		for _, ev := range res.Events {
			if ev.Kind == core.EventCollision {
				report.Collisions++
			}
		}
		core.Dispatch(res.Events, obs)
	}

	report.Score = s.BestScore()
	report.LivesLeft = s.Life()
	report.GameOver = s.Phase() == engine.PhaseGameOver
	snap := s.Snapshot()
	report.Hash = snap.Hash()
	return report, nil
}
