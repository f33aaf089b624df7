package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultGliderConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.0},
		{25, 0.5},
		{50, 1.0},
		{500, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score); got != tt.want {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	dm.SetEnabled(false)
	if got := dm.Level(40); got != 0 {
		t.Errorf("disabled Level = %v, want initial level 0", got)
	}
}

func TestDifficultyLevelFromInitial(t *testing.T) {
	cfg := DefaultGliderConfig().Difficulty
	cfg.InitialLevel = 0.5
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0); got != 0.5 {
		t.Errorf("Level(0) = %v, want 0.5", got)
	}
	if got := dm.Level(25); got != 0.75 {
		t.Errorf("Level(25) = %v, want 0.75", got)
	}
}

func TestGapDistanceRangeShrinks(t *testing.T) {
	cfg := DefaultGliderConfig()
	dm := NewDifficultyManager(cfg.Difficulty)

	_, hi0 := dm.GapDistanceRange(cfg.Obstacles, 0)
	_, hi5 := dm.GapDistanceRange(cfg.Obstacles, 5)
	if !(hi5 < hi0) {
		t.Errorf("upper bound did not shrink: score 0 -> %v, score 5 -> %v", hi0, hi5)
	}

	prev := hi0
	for score := 1; score < cfg.Difficulty.Progression.MaxAt; score++ {
		_, hi := dm.GapDistanceRange(cfg.Obstacles, score)
		if hi > prev {
			t.Fatalf("upper bound grew at score %d: %v > %v", score, hi, prev)
		}
		prev = hi
	}

	lo, hiMax := dm.GapDistanceRange(cfg.Obstacles, 10_000)
	if hiMax != cfg.Obstacles.GapDistanceFloor {
		t.Errorf("saturated upper bound = %v, want floor %v", hiMax, cfg.Obstacles.GapDistanceFloor)
	}
	if lo != cfg.Obstacles.GapDistanceMin {
		t.Errorf("lo = %v, want %v", lo, cfg.Obstacles.GapDistanceMin)
	}
}

func TestGapDistanceRangeDegenerate(t *testing.T) {
	cfg := DefaultGliderConfig()
	cfg.Obstacles.GapDistanceMin = 100
	cfg.Obstacles.GapDistanceMax = 50
	cfg.Obstacles.GapDistanceFloor = 0
	dm := NewDifficultyManager(cfg.Difficulty)

	lo, hi := dm.GapDistanceRange(cfg.Obstacles, 0)
	if lo != 100 || hi != 100 {
		t.Errorf("degenerate range = [%v, %v], want [100, 100]", lo, hi)
	}
}

func TestDifficultyNoneProgression(t *testing.T) {
	cfg := DefaultGliderConfig().Difficulty
	cfg.Progression.Type = ProgressionNone
	cfg.InitialLevel = 0.3
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("progression 'none' should report disabled")
	}
	if got := dm.Level(49); got != 0.3 {
		t.Errorf("Level = %v, want 0.3", got)
	}
}
