package engine

// Shade is a gray level, 255 is white.
type Shade uint8

// Fixed palette.
const (
	BackgroundShade Shade = 0xe0
	ObstacleShade   Shade = 0x50
	TrailShade      Shade = 0xff
)

// Scene describes one frame for an external renderer. All positions are
// absolute field coordinates.
type Scene struct {
	Field      Field
	Background Shade
	Trail      []TrailBand
	Body       BodyTransform
	Obstacles  []ObstacleRects
	Warning    *Warning // nil when nothing is approaching

	Life      int
	Score     int
	BestScore int
	Distance  float64
	Phase     Phase
}

// TrailBand is a polyline segment of the trail drawn in one shade. A band
// starts at the last point of the previous one.
type TrailBand struct {
	Points []Vec
	Shade  Shade
}

// BodyTransform places the body sprite.
type BodyTransform struct {
	Position Vec
	Angle    float64
	Size     float64
}

// ObstacleRects are the two visible blocks of an obstacle.
type ObstacleRects struct {
	Upper, Lower RectF
	Shade        Shade
}

// Warning previews the next obstacle before it enters the field. The rects
// sit against the right edge; Intensity grows from 0 to 1 as Distance
// shrinks to zero.
type Warning struct {
	Upper, Lower RectF
	Distance     float64
	Intensity    float64
}

func (s *Session) buildScene() Scene {
	pos := s.bodyPosition()

	scene := Scene{
		Field:      s.field,
		Background: BackgroundShade,
		Trail:      trailBands(s.trail, pos, s.cfg.Game.TrailBand),
		Body: BodyTransform{
			Position: pos,
			Angle:    s.body.Angle,
			Size:     s.cfg.Body.Size,
		},
		Obstacles: make([]ObstacleRects, 0, len(s.obstacles)),
		Warning:   s.warning(),
		Life:      s.state.Life(),
		Score:     s.state.Score(),
		BestScore: s.state.BestScore(),
		Distance:  s.distance,
		Phase:     s.state.Phase(),
	}
	for _, o := range s.obstacles {
		scene.Obstacles = append(scene.Obstacles, ObstacleRects{
			Upper: o.UpperRect(),
			Lower: o.LowerRect(s.field),
			Shade: ObstacleShade,
		})
	}
	return scene
}

// trailBands splits the trail into bands of size segments, darkening by one
// shade per band.
func trailBands(trail []TrailPoint, origin Vec, size int) []TrailBand {
	if len(trail) < 2 {
		return nil
	}
	if size < 1 {
		size = 1
	}

	var bands []TrailBand
	for start, band := 0, 0; start < len(trail)-1; start, band = start+size, band+1 {
		end := min(start+size+1, len(trail))
		pts := make([]Vec, 0, end-start)
		for _, p := range trail[start:end] {
			pts = append(pts, Vec{X: origin.X + p.X, Y: origin.Y + p.Y})
		}
		shade := Shade(0)
		if band < int(TrailShade) {
			shade = TrailShade - Shade(band)
		}
		bands = append(bands, TrailBand{Points: pts, Shade: shade})
	}
	return bands
}

// warning returns the preview for the first obstacle not yet fully inside
// the field, if it is within range.
func (s *Session) warning() *Warning {
	reach := s.cfg.Obstacles.WarningRange
	if reach <= 0 {
		return nil
	}
	for _, o := range s.obstacles {
		if o.Trailing() <= s.field.W {
			continue
		}
		dist := max(0, o.X-s.field.W)
		if dist > reach {
			return nil
		}
		x := s.field.W - o.Width
		return &Warning{
			Upper:     RectF{X: x, Y: 0, W: o.Width, H: o.Y1},
			Lower:     RectF{X: x, Y: o.Y2, W: o.Width, H: s.field.H - o.Y2},
			Distance:  dist,
			Intensity: 1 - dist/reach,
		}
	}
	return nil
}
