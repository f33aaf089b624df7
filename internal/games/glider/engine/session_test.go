package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/glider/internal/config"
	"github.com/vovakirdan/glider/internal/core"
)

func TestSessionStartsIdle(t *testing.T) {
	s := NewSession(config.DefaultGliderConfig(), testField, 1)
	if s.Phase() != PhaseIdle || s.Life() != 10 {
		t.Fatalf("phase=%v life=%d", s.Phase(), s.Life())
	}

	// Idle ticks render but do not move anything
	before := s.Snapshot()
	res := s.Tick()
	if res.Events != nil || res.Scene.Phase != PhaseIdle {
		t.Errorf("idle tick: events=%v phase=%v", res.Events, res.Scene.Phase)
	}
	if s.Body() != (Body{}) || len(s.Obstacles()) != 0 {
		t.Errorf("idle tick moved the world: body=%+v obstacles=%d", s.Body(), len(s.Obstacles()))
	}
	if s.Ticks() != before.Tick+1 {
		t.Errorf("tick counter = %d, want %d", s.Ticks(), before.Tick+1)
	}
}

func TestRisingEdgeStartsRound(t *testing.T) {
	s := NewSession(config.DefaultGliderConfig(), testField, 1)

	events := s.SetFlyingIntent(true)
	if len(events) != 1 || events[0].Kind != core.EventRoundStart {
		t.Fatalf("events = %v, want [RoundStart(0)]", events)
	}
	if s.Phase() != PhaseFlying {
		t.Fatalf("phase = %v, want flying", s.Phase())
	}

	// Holding or re-sending the same level is not an edge
	if events := s.SetFlyingIntent(true); events != nil {
		t.Errorf("held intent produced %v", events)
	}
	if events := s.SetFlyingIntent(false); events != nil {
		t.Errorf("falling edge produced %v", events)
	}
}

func TestGlideScenario(t *testing.T) {
	cfg := constantConfig(10)
	field := Field{W: 800, H: 600}
	s := startedSession(cfg, field, 0)
	s.obstacles = []Obstacle{{X: 500, Y1: 200, Y2: 400, Width: cfg.Obstacles.Width}}

	prior := s.Body().Angle
	res := s.Tick()
	if res.Events != nil {
		t.Fatalf("unexpected events %v", res.Events)
	}

	stepX, stepY := 10*math.Cos(prior), 10*math.Sin(prior)
	want := math.Atan2(stepY+cfg.Physics.GlideBias, stepX)
	if got := s.Body().Angle; got != want {
		t.Errorf("angle = %v, want %v", got, want)
	}
	if got := s.Body().Offset; got != stepY {
		t.Errorf("offset = %v, want %v", got, stepY)
	}
	if got := s.Obstacles()[0].X; got != 490 {
		t.Errorf("obstacle x = %v, want 490", got)
	}
}

func TestCollisionStopsPhysics(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	s := startedSession(cfg, testField, 0)
	s.body.Offset = testField.H / 2 // centre on the floor line

	res := s.Tick()
	want := core.Event{Kind: core.EventCollision, Value: 9}
	if len(res.Events) != 1 || res.Events[0] != want {
		t.Fatalf("events = %v, want [%v]", res.Events, want)
	}
	if s.Life() != 9 || s.Phase() != PhaseIdle {
		t.Fatalf("life=%d phase=%v", s.Life(), s.Phase())
	}

	frozen := s.Body()
	for range 5 {
		if res := s.Tick(); res.Events != nil {
			t.Fatalf("tick after collision produced %v", res.Events)
		}
	}
	if s.Body() != frozen || s.Life() != 9 {
		t.Errorf("state changed while idle: body %+v -> %+v, life %d", frozen, s.Body(), s.Life())
	}
}

func TestRoundStartResetsWorld(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	s := NewSession(cfg, testField, 4)
	pilot := NewAutopilot()
	for range 200 {
		pilot.Drive(s)
		if s.Phase() == PhaseFlying && s.Distance() > 100 && len(s.Trail()) > 10 {
			break
		}
	}
	if s.Phase() != PhaseFlying {
		t.Fatalf("phase = %v, want flying", s.Phase())
	}
	s.state.AddScore(3)
	lifeBefore := s.Life()
	s.body.Offset = testField.H // force a crash
	s.Tick()
	if s.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want idle", s.Phase())
	}

	s.SetFlyingIntent(false)
	s.SetFlyingIntent(true)

	if s.Body().Angle != 0 || s.Body().Offset != 0 {
		t.Errorf("body not reset: %+v", s.Body())
	}
	if len(s.Trail()) != 0 || len(s.Obstacles()) != 0 {
		t.Errorf("trail=%d obstacles=%d, want empty", len(s.Trail()), len(s.Obstacles()))
	}
	if s.Score() != 0 || s.Distance() != 0 {
		t.Errorf("score=%d distance=%v, want zero", s.Score(), s.Distance())
	}
	if s.Life() != lifeBefore-1 {
		t.Errorf("life = %d, want %d", s.Life(), lifeBefore-1)
	}
}

func TestTenCrashesGameOver(t *testing.T) {
	s := NewSession(config.DefaultGliderConfig(), testField, 1)

	var last []core.Event
	for i := range 10 {
		s.SetFlyingIntent(false)
		if events := s.SetFlyingIntent(true); len(events) != 1 {
			t.Fatalf("attempt %d did not start: %v", i+1, events)
		}
		s.body.Offset = -testField.H
		last = s.Tick().Events
	}

	if s.Phase() != PhaseGameOver || s.Life() != 0 {
		t.Fatalf("phase=%v life=%d", s.Phase(), s.Life())
	}
	if len(last) != 2 || last[1].Kind != core.EventGameOver {
		t.Errorf("final events = %v, want collision then game over", last)
	}

	s.SetFlyingIntent(false)
	if events := s.SetFlyingIntent(true); events != nil || s.Phase() != PhaseGameOver {
		t.Errorf("11th attempt permitted: events=%v phase=%v", events, s.Phase())
	}

	// Game over ticks repeat the last frame
	before := s.Snapshot()
	res := s.Tick()
	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("game over tick changed state")
	}
	if res.Scene.Phase != PhaseGameOver || res.Scene.Life != 0 {
		t.Errorf("last scene phase=%v life=%d", res.Scene.Phase, res.Scene.Life)
	}

	s.Restart()
	if s.Phase() != PhaseIdle || s.Life() != 10 {
		t.Errorf("after restart: phase=%v life=%d", s.Phase(), s.Life())
	}
}

func TestScoreOncePerObstacle(t *testing.T) {
	cfg := constantConfig(10)
	s := startedSession(cfg, testField, 0)
	bodyX := testField.W * cfg.Body.AnchorX

	// A full-height gap never collides
	s.obstacles = []Obstacle{{X: bodyX + 5 - 40, Y1: 0, Y2: testField.H, Width: 40}}

	res := s.Tick()
	want := core.Event{Kind: core.EventNewBestScore, Value: 1}
	if len(res.Events) != 1 || res.Events[0] != want {
		t.Fatalf("events = %v, want [%v]", res.Events, want)
	}
	if s.Score() != 1 {
		t.Fatalf("score = %d, want 1", s.Score())
	}

	// Drag the scored obstacle back in front of the body
	s.obstacles[0].X = bodyX + 5 - 40
	s.Tick()
	if s.Score() != 1 {
		t.Errorf("obstacle scored twice: score = %d", s.Score())
	}
}

func TestObstacleEvictionAndSpawn(t *testing.T) {
	cfg := constantConfig(10)
	s := startedSession(cfg, testField, 0)

	s.Tick()
	obs := s.Obstacles()
	if len(obs) != 1 || obs[0].X < testField.W-10 {
		t.Fatalf("expected one spawned obstacle at the right edge, got %+v", obs)
	}

	s.obstacles = []Obstacle{
		{X: -35, Y1: 0, Y2: testField.H, Width: 40},
		{X: testField.W, Y1: 0, Y2: testField.H, Width: 40},
	}
	s.Tick()
	obs = s.Obstacles()
	if len(obs) != 1 || obs[0].X >= testField.W {
		t.Errorf("expected only the right obstacle after eviction, got %+v", obs)
	}
}

func TestResize(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	s := startedSession(cfg, testField, 0)
	s.state.AddScore(2)
	for range 10 {
		s.Tick()
	}

	t.Run("invalid suspends", func(t *testing.T) {
		s.Resize(0, 300)
		before := s.Snapshot()
		s.Tick()
		if after := s.Snapshot(); after.Hash() != before.Hash() {
			t.Error("tick ran with an invalid field")
		}
		s.Resize(-5, -5)
		if s.FieldValid() {
			t.Error("negative field reported valid")
		}
	})

	t.Run("valid keeps progress", func(t *testing.T) {
		s.Resize(600, 300)
		if s.Field() != (Field{W: 600, H: 300}) || !s.FieldValid() {
			t.Fatalf("field = %+v valid=%v", s.Field(), s.FieldValid())
		}
		if s.Life() != 10 || s.Score() != 2 || s.Phase() != PhaseFlying {
			t.Errorf("progress lost: life=%d score=%d phase=%v", s.Life(), s.Score(), s.Phase())
		}
		if len(s.Obstacles()) != 0 || len(s.Trail()) != 0 || s.Body().Offset != 0 {
			t.Errorf("world not cleared: obstacles=%d trail=%d offset=%v", len(s.Obstacles()), len(s.Trail()), s.Body().Offset)
		}
	})
}

func TestSessionDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		s := NewSession(config.DefaultGliderConfig(), testField, seed)
		pilot := NewAutopilot()
		for range 3000 {
			pilot.Drive(s)
		}
		return s.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Life != snap2.Life {
		t.Errorf("Determinism failed: score %d/%d life %d/%d", snap1.Score, snap2.Score, snap1.Life, snap2.Life)
	}
}

func TestLongRunProperties(t *testing.T) {
	for _, variant := range []string{"glider", "classic"} {
		t.Run(variant, func(t *testing.T) {
			cfg := config.DefaultGliderConfig()
			if variant == "classic" {
				config.ApplyClassic(&cfg)
			}
			s := NewSession(cfg, testField, 99)
			pilot := NewAutopilot()

			maxGap := cfg.MaxSpace()
			if cfg.Obstacles.Generator == config.GeneratorRejection {
				maxGap = 2 * cfg.MinSpace()
			}
			life := s.Life()

			for i := range 5000 {
				res := pilot.Drive(s)
				if s.Phase() == PhaseGameOver {
					s.Restart()
					life = s.Life()
					continue
				}
				if n := len(s.Trail()); n > cfg.Physics.HistoryLen {
					t.Fatalf("tick %d: trail length %d", i, n)
				}
				if s.Life() > life {
					t.Fatalf("tick %d: life grew from %d to %d", i, life, s.Life())
				}
				life = s.Life()
				for _, o := range s.Obstacles() {
					if o.Gap() < cfg.MinSpace()-1e-9 || o.Gap() > maxGap+1e-9 {
						t.Fatalf("tick %d: gap %v out of band", i, o.Gap())
					}
					if o.Y1 < 0 || o.Y2 > testField.H+1e-9 {
						t.Fatalf("tick %d: gap (%v, %v) out of field", i, o.Y1, o.Y2)
					}
				}
				if len(res.Scene.Trail) > 0 && res.Scene.Trail[0].Shade != TrailShade {
					t.Fatalf("tick %d: first trail band shade %d", i, res.Scene.Trail[0].Shade)
				}
			}
		})
	}
}
