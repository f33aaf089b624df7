package engine

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/glider/internal/config"
)

// Hit is the outcome of a collision test.
type Hit int

const (
	HitNone  Hit = iota
	HitUpper     // upper block or ceiling
	HitLower     // lower block or floor
)

// String returns a human-readable name for the hit.
func (h Hit) String() string {
	switch h {
	case HitNone:
		return "none"
	case HitUpper:
		return "upper"
	case HitLower:
		return "lower"
	default:
		return "unknown"
	}
}

// Detector tests the body against the nearest obstacle and the field edges.
type Detector struct {
	mode    string
	half    float64 // silhouette half-extent
	anchorX float64
}

// NewDetector creates a detector from the glider config.
func NewDetector(cfg config.GliderConfig) *Detector {
	return &Detector{
		mode:    cfg.Collision.Mode,
		half:    cfg.HalfCheck(),
		anchorX: cfg.Body.AnchorX,
	}
}

// Margin is the broad-phase horizontal slack around an obstacle.
func (d *Detector) Margin() float64 {
	if d.mode == config.CollisionBand {
		return d.half
	}
	return d.half * math.Sqrt2
}

// Relevant returns the obstacles whose widened span contains bodyX, leftmost
// first. Closely spawned obstacles can have overlapping spans, so more than
// one may apply. An empty result is open sky.
func (d *Detector) Relevant(bodyX float64, obstacles []Obstacle) []Obstacle {
	m := d.Margin()
	var out []Obstacle
	for _, o := range obstacles {
		if o.X-m <= bodyX && bodyX <= o.Trailing()+m {
			out = append(out, o)
		}
	}
	return out
}

// Check runs the broad and narrow phases. Lower contacts win over upper ones.
func (d *Detector) Check(body Body, obstacles []Obstacle, field Field) Hit {
	pos := body.Position(field, d.anchorX)
	near := d.Relevant(pos.X, obstacles)

	if d.mode == config.CollisionBand {
		return d.checkBand(pos, near, field)
	}
	return d.checkSilhouette(body, pos, near, field)
}

// checkBand compares the unrotated vertical extent with the tightest gap
// edges among the relevant obstacles.
func (d *Detector) checkBand(pos Vec, near []Obstacle, field Field) Hit {
	y1, y2 := 0.0, field.H
	for _, o := range near {
		y1, y2 = math.Max(y1, o.Y1), math.Min(y2, o.Y2)
	}
	if pos.Y+d.half > y2 {
		return HitLower
	}
	if pos.Y-d.half < y1 {
		return HitUpper
	}
	return HitNone
}

// checkSilhouette intersects the rotated body square with the obstacle
// blocks and the field slabs. Blocks extend a field height past the visible
// edge so a body that left the field is still inside something.
func (d *Detector) checkSilhouette(body Body, pos Vec, near []Obstacle, field Field) Hit {
	poly := d.polygon(body, pos)

	floor := RectF{X: -field.W, Y: field.H, W: 3 * field.W, H: field.H}
	ceiling := RectF{X: -field.W, Y: -field.H, W: 3 * field.W, H: field.H}

	for _, o := range near {
		lower := RectF{X: o.X, Y: o.Y2, W: o.Width, H: 2*field.H - o.Y2}
		if overlaps(poly, pos, lower) {
			return HitLower
		}
	}
	if overlaps(poly, pos, floor) {
		return HitLower
	}
	for _, o := range near {
		upper := RectF{X: o.X, Y: -field.H, W: o.Width, H: o.Y1 + field.H}
		if overlaps(poly, pos, upper) {
			return HitUpper
		}
	}
	if overlaps(poly, pos, ceiling) {
		return HitUpper
	}
	return HitNone
}

// Silhouette returns the corners of the rotated collision square, clockwise
// from the top-left corner at angle zero.
func (d *Detector) Silhouette(body Body, pos Vec) [4]Vec {
	sin, cos := math.Sincos(body.Angle)
	h := d.half
	local := [4]Vec{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	var out [4]Vec
	for i, p := range local {
		out[i] = Vec{
			X: pos.X + p.X*cos - p.Y*sin,
			Y: pos.Y + p.X*sin + p.Y*cos,
		}
	}
	return out
}

func (d *Detector) polygon(body Body, pos Vec) *resolv.ConvexPolygon {
	c := d.Silhouette(body, pos)
	return resolv.NewConvexPolygon(0, 0,
		c[0].X, c[0].Y,
		c[1].X, c[1].Y,
		c[2].X, c[2].Y,
		c[3].X, c[3].Y,
	)
}

// overlaps reports edge contact between the silhouette and r, or the
// silhouette's centre lying inside r (resolv only reports crossing edges).
func overlaps(poly *resolv.ConvexPolygon, centre Vec, r RectF) bool {
	if r.Empty() {
		return false
	}
	if r.Contains(centre) {
		return true
	}
	return poly.Intersection(0, 0, resolv.NewRectangle(r.X, r.Y, r.W, r.H)) != nil
}

// Crossed reports whether this tick's step carries bodyX over the
// obstacle's trailing edge. Obstacles already scored never cross again.
func (d *Detector) Crossed(bodyX float64, o Obstacle, step Vec) bool {
	if o.Passed {
		return false
	}
	t := o.Trailing()
	return bodyX < t && t <= bodyX+step.X
}
