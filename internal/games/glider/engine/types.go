// Package engine implements the glider simulation: obstacle generation,
// the turning/gliding flight model, geometric collision detection, the
// life/score state machine and the per-tick orchestrator that ties them
// together into a renderable Scene.
//
// The engine performs no I/O and never blocks. Coordinates are field units
// with y growing downwards; the body's horizontal position is fixed and the
// world scrolls past it.
package engine

import "math"

// Vec is a 2D vector in field units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// RectF is an axis-aligned rectangle in field units.
type RectF struct {
	X, Y, W, H float64
}

// Right returns the x coordinate one past the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r RectF) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies strictly inside the rectangle.
func (r RectF) Contains(p Vec) bool {
	return p.X > r.X && p.X < r.Right() && p.Y > r.Y && p.Y < r.Bottom()
}

// Field is the playable area.
type Field struct {
	W, H float64
}

// Valid reports whether both dimensions are positive and finite.
func (f Field) Valid() bool {
	return f.W > 0 && f.H > 0 && !math.IsInf(f.W, 0) && !math.IsInf(f.H, 0)
}

// Body is the flying body. Offset is measured from the field's horizontal
// centre line; Angle is the heading in radians (negative pitches up).
type Body struct {
	Angle  float64
	Offset float64
	Flying bool
}

// Position returns the body's centre for a field and horizontal anchor.
func (b Body) Position(f Field, anchorX float64) Vec {
	return Vec{X: f.W * anchorX, Y: f.H/2 + b.Offset}
}

// TrailPoint is a past position relative to the body, most recent first.
type TrailPoint struct {
	X, Y float64
}

// Obstacle is a pair of blocking regions with an open gap (Y1, Y2) between them.
type Obstacle struct {
	X      float64 // leading (left) edge
	Y1     float64 // bottom edge of the upper block
	Y2     float64 // top edge of the lower block
	Width  float64
	Passed bool // already scored
}

// Gap returns the gap height.
func (o Obstacle) Gap() float64 {
	return o.Y2 - o.Y1
}

// Trailing returns the x of the trailing (right) edge.
func (o Obstacle) Trailing() float64 {
	return o.X + o.Width
}

// UpperRect returns the visible upper block.
func (o Obstacle) UpperRect() RectF {
	return RectF{X: o.X, Y: 0, W: o.Width, H: o.Y1}
}

// LowerRect returns the visible lower block.
func (o Obstacle) LowerRect(f Field) RectF {
	return RectF{X: o.X, Y: o.Y2, W: o.Width, H: f.H - o.Y2}
}

// uniform draws from [lo, hi). A degenerate range yields lo.
func uniform(rng interface{ Float64() float64 }, lo, hi float64) float64 {
	if !(hi > lo) {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
