package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/glider/internal/config"
)

// Generator produces the next obstacle from the previous one (nil when the
// field is empty), the field and the current score. Implementations only
// consume their random source.
type Generator interface {
	Generate(prev *Obstacle, field Field, score int) Obstacle
}

// NewGenerator returns the generator selected by cfg.Obstacles.Generator.
func NewGenerator(cfg config.GliderConfig, diff *config.DifficultyManager, rng *rand.Rand) Generator {
	w := NewWindowedGenerator(cfg, diff, rng)
	if cfg.Obstacles.Generator == config.GeneratorRejection {
		return &RejectionGenerator{windowed: w}
	}
	return w
}

// WindowedGenerator places the gap's top edge inside a window around the
// previous obstacle's, widening with horizontal distance.
type WindowedGenerator struct {
	cfg  config.GliderConfig
	diff *config.DifficultyManager
	rng  *rand.Rand
}

// NewWindowedGenerator creates a windowed generator.
func NewWindowedGenerator(cfg config.GliderConfig, diff *config.DifficultyManager, rng *rand.Rand) *WindowedGenerator {
	return &WindowedGenerator{cfg: cfg, diff: diff, rng: rng}
}

// Generate implements Generator.
func (g *WindowedGenerator) Generate(prev *Obstacle, field Field, score int) Obstacle {
	lo, hi := g.diff.GapDistanceRange(g.cfg.Obstacles, score)
	return g.place(prev, field, uniform(g.rng, lo, hi))
}

// place builds an obstacle gapDistance beyond the right edge.
func (g *WindowedGenerator) place(prev *Obstacle, field Field, gapDistance float64) Obstacle {
	o := Obstacle{
		X:     field.W + gapDistance,
		Width: g.cfg.Obstacles.Width,
	}

	minSpace := g.cfg.MinSpace()
	if field.H < minSpace {
		// No legal gap fits; leave the column open.
		o.Y1, o.Y2 = 0, math.Max(field.H, 0)
		return o
	}

	space := uniform(g.rng, minSpace, math.Min(g.cfg.MaxSpace(), field.H))

	ref := field.H / 3
	if prev != nil {
		ref = prev.Y1
	}
	half := g.cfg.Obstacles.DriftBase + g.cfg.Obstacles.DriftPerDistance*gapDistance
	top := field.H - space
	lo := math.Max(0, ref-half)
	hi := math.Min(top, ref+half)

	var y1 float64
	if lo > hi {
		y1 = clampF(ref, 0, top)
	} else {
		y1 = uniform(g.rng, lo, hi)
	}

	o.Y1 = y1
	o.Y2 = y1 + space
	return o
}

// RejectionGenerator draws both gap edges independently around the previous
// obstacle's edges and resamples draws whose gap falls outside
// [minSpace, 2*minSpace]. After MaxAttempts rejections it falls back to the
// windowed placement.
type RejectionGenerator struct {
	windowed *WindowedGenerator
}

// Generate implements Generator.
func (g *RejectionGenerator) Generate(prev *Obstacle, field Field, score int) Obstacle {
	cfg := g.windowed.cfg
	rng := g.windowed.rng

	lo, hi := g.windowed.diff.GapDistanceRange(cfg.Obstacles, score)
	gapDistance := uniform(rng, lo, hi)

	minSpace := cfg.MinSpace()
	if field.H < minSpace {
		return g.windowed.place(prev, field, gapDistance)
	}

	ref1, ref2 := field.H/3, 2*field.H/3
	if prev != nil {
		ref1, ref2 = prev.Y1, prev.Y2
	}
	drift := cfg.Obstacles.DriftWindow

	for range cfg.Obstacles.MaxAttempts {
		y1 := uniform(rng, math.Max(0, ref1-drift), math.Min(field.H, ref1+drift))
		y2 := uniform(rng, math.Max(0, ref2-drift), math.Min(field.H, ref2+drift))
		if space := y2 - y1; space >= minSpace && space <= 2*minSpace {
			return Obstacle{
				X:     field.W + gapDistance,
				Y1:    y1,
				Y2:    y2,
				Width: cfg.Obstacles.Width,
			}
		}
	}

	return g.windowed.place(prev, field, gapDistance)
}
