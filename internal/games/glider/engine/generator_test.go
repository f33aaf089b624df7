package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/glider/internal/config"
)

func newWindowed(cfg config.GliderConfig, seed int64) *WindowedGenerator {
	return NewWindowedGenerator(cfg, config.NewDifficultyManager(cfg.Difficulty), rand.New(rand.NewSource(seed)))
}

func TestWindowedGapBounds(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	g := newWindowed(cfg, 7)
	minSpace, maxSpace := cfg.MinSpace(), cfg.MaxSpace()

	var prev *Obstacle
	for i := range 2000 {
		score := i / 20
		o := g.Generate(prev, testField, score)

		if o.Gap() < minSpace-1e-9 || o.Gap() > maxSpace+1e-9 {
			t.Fatalf("obstacle %d: gap %v outside [%v, %v]", i, o.Gap(), minSpace, maxSpace)
		}
		if o.Y1 < 0 || o.Y2 > testField.H+1e-9 {
			t.Fatalf("obstacle %d: gap (%v, %v) outside field height %v", i, o.Y1, o.Y2, testField.H)
		}
		if o.X < testField.W {
			t.Fatalf("obstacle %d: spawned inside the field at x=%v", i, o.X)
		}
		if o.Width != cfg.Obstacles.Width {
			t.Fatalf("obstacle %d: width %v, want %v", i, o.Width, cfg.Obstacles.Width)
		}
		prev = &o
	}
}

func TestWindowedFirstObstacleUsesThirdHeight(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	g := newWindowed(cfg, 3)

	for range 200 {
		o := g.Generate(nil, testField, 0)
		gapDistance := o.X - testField.W
		half := cfg.Obstacles.DriftBase + cfg.Obstacles.DriftPerDistance*gapDistance
		ref := testField.H / 3
		if o.Y1 < ref-half-1e-9 || o.Y1 > ref+half+1e-9 {
			t.Fatalf("y1 %v outside window %v +- %v", o.Y1, ref, half)
		}
	}
}

func TestWindowedDistanceScaling(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	g := newWindowed(cfg, 11)

	for range 200 {
		o := g.Generate(nil, testField, 0)
		if d := o.X - testField.W; d < cfg.Obstacles.GapDistanceMin || d > cfg.Obstacles.GapDistanceMax {
			t.Fatalf("score 0: gap distance %v outside [%v, %v]", d, cfg.Obstacles.GapDistanceMin, cfg.Obstacles.GapDistanceMax)
		}
	}

	// At saturation the upper bound is the floor
	for range 200 {
		o := g.Generate(nil, testField, 1000)
		if d := o.X - testField.W; d > cfg.Obstacles.GapDistanceFloor {
			t.Fatalf("saturated: gap distance %v above floor %v", d, cfg.Obstacles.GapDistanceFloor)
		}
	}
}

func TestWindowedSmallField(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	g := newWindowed(cfg, 1)

	tests := []struct {
		name  string
		field Field
	}{
		{"shorter than min gap", Field{W: 400, H: 100}},
		{"between min and max gap", Field{W: 400, H: 150}},
		{"exactly min gap", Field{W: 400, H: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 50 {
				o := g.Generate(nil, tt.field, 0)
				if o.Y1 < 0 || o.Y2 > tt.field.H+1e-9 {
					t.Fatalf("gap (%v, %v) outside field height %v", o.Y1, o.Y2, tt.field.H)
				}
				if tt.field.H < cfg.MinSpace() {
					if o.Y1 != 0 || o.Y2 != tt.field.H {
						t.Fatalf("expected open column, got (%v, %v)", o.Y1, o.Y2)
					}
				} else if o.Gap() < cfg.MinSpace()-1e-9 {
					t.Fatalf("gap %v below min %v", o.Gap(), cfg.MinSpace())
				}
			}
		})
	}
}

func TestWindowedEmptyWindowClamps(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	cfg.Obstacles.DriftBase = 0
	cfg.Obstacles.DriftPerDistance = 0
	g := newWindowed(cfg, 5)

	// Previous obstacle from a taller field
	prev := &Obstacle{X: 100, Y1: 1000, Y2: 1150, Width: 40}
	o := g.Generate(prev, testField, 0)

	if !approx(o.Y2, testField.H) {
		t.Errorf("expected gap pushed against the floor, got (%v, %v)", o.Y1, o.Y2)
	}
	if o.Y1 < 0 {
		t.Errorf("y1 %v negative", o.Y1)
	}
}

func TestRejectionGapBounds(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	cfg.Obstacles.Generator = config.GeneratorRejection
	diff := config.NewDifficultyManager(cfg.Difficulty)
	g := NewGenerator(cfg, diff, rand.New(rand.NewSource(9)))
	if _, ok := g.(*RejectionGenerator); !ok {
		t.Fatalf("expected RejectionGenerator, got %T", g)
	}

	minSpace := cfg.MinSpace()
	var prev *Obstacle
	for i := range 2000 {
		o := g.Generate(prev, testField, 0)
		if o.Gap() < minSpace-1e-9 || o.Gap() > 2*minSpace+1e-9 {
			t.Fatalf("obstacle %d: gap %v outside [%v, %v]", i, o.Gap(), minSpace, 2*minSpace)
		}
		if o.Y1 < 0 || o.Y2 > testField.H+1e-9 {
			t.Fatalf("obstacle %d: gap (%v, %v) outside field", i, o.Y1, o.Y2)
		}
		prev = &o
	}
}

func TestRejectionFallsBackAfterMaxAttempts(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	cfg.Obstacles.Generator = config.GeneratorRejection
	cfg.Obstacles.DriftWindow = 0
	cfg.Obstacles.MaxAttempts = 4
	g := NewGenerator(cfg, config.NewDifficultyManager(cfg.Difficulty), rand.New(rand.NewSource(2)))

	// Zero drift around a 10-unit gap can never be accepted
	prev := &Obstacle{X: 0, Y1: 200, Y2: 210, Width: 40}
	o := g.Generate(prev, testField, 0)

	if o.Gap() < cfg.MinSpace()-1e-9 || o.Gap() > cfg.MaxSpace()+1e-9 {
		t.Errorf("fallback gap %v outside [%v, %v]", o.Gap(), cfg.MinSpace(), cfg.MaxSpace())
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	cfg := config.DefaultGliderConfig()
	g1 := newWindowed(cfg, 42)
	g2 := newWindowed(cfg, 42)

	var p1, p2 *Obstacle
	for i := range 100 {
		o1 := g1.Generate(p1, testField, i)
		o2 := g2.Generate(p2, testField, i)
		if o1 != o2 {
			t.Fatalf("generation %d differs: %+v vs %+v", i, o1, o2)
		}
		p1, p2 = &o1, &o2
	}
}
