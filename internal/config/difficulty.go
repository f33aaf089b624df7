package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the current difficulty level (0.0 to 1.0) for a score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != ProgressionScore {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(score)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GapDistanceRange returns the [lo, hi] range the next obstacle's distance
// beyond the right edge is drawn from. The upper bound shrinks with the level
// but never below floor; hi < lo is returned as hi == lo.
func (d *DifficultyManager) GapDistanceRange(obs GliderObstacles, score int) (lo, hi float64) {
	lo = obs.GapDistanceMin
	hi = obs.GapDistanceMax - d.Level(score)*d.cfg.Scaling.DistanceReduction
	if hi < obs.GapDistanceFloor {
		hi = obs.GapDistanceFloor
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
