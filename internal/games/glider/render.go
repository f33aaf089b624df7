package glider

import (
	"fmt"
	"math"

	"github.com/vovakirdan/glider/internal/core"
	"github.com/vovakirdan/glider/internal/games/glider/engine"
)

// Visual characters for rendering
const (
	ObstacleChar = '█'
	ObstacleEdge = '▓'
	WarningFar   = '░'
	WarningNear  = '▒'
	TrailChar    = '·'
	BodyTail     = '~'
)

// headingArrows are indexed by octant, starting east and turning clockwise
// (y grows downwards).
var headingArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// raster maps field units to screen cells.
type raster struct {
	cw, ch float64
	top    int // first field row on screen
}

func (r raster) cell(p engine.Vec) (int, int) {
	return int(math.Floor(p.X / r.cw)), int(math.Floor(p.Y/r.ch)) + r.top
}

// cellRect returns the cells a field rectangle touches.
func (r raster) cellRect(rect engine.RectF) core.Rect {
	if rect.Empty() {
		return core.Rect{}
	}
	x0 := int(math.Floor(rect.X / r.cw))
	y0 := int(math.Floor(rect.Y / r.ch))
	x1 := int(math.Ceil(rect.Right() / r.cw))
	y1 := int(math.Ceil(rect.Bottom() / r.ch))
	return core.NewRect(x0, y0+r.top, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorDefault)
		return
	}
	if g.session == nil {
		return
	}

	r := raster{cw: g.cfg.Field.CellWidth, ch: g.cfg.Field.CellHeight, top: g.cfg.Field.HUDRows}
	field := fieldBounds(dst, r.top)

	g.renderWarning(dst, r, field)
	g.renderObstacles(dst, r, field)
	g.renderTrail(dst, r, field)
	g.renderBody(dst, r, field)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func fieldBounds(dst *core.Screen, top int) core.Rect {
	return core.NewRect(0, top, dst.Width(), dst.Height()-top)
}

// renderObstacles fills both blocks, marking the gap edges.
func (g *Game) renderObstacles(dst *core.Screen, r raster, field core.Rect) {
	color := core.GrayFromShade(uint8(engine.ObstacleShade))
	for _, o := range g.scene.Obstacles {
		upper := r.cellRect(o.Upper).Clip(field)
		lower := r.cellRect(o.Lower).Clip(field)
		dst.DrawRect(upper, ObstacleChar, color)
		dst.DrawRect(lower, ObstacleChar, color)
		if !upper.Empty() {
			dst.DrawHLine(upper.X, upper.Bottom()-1, upper.W, ObstacleEdge, color)
		}
		if !lower.Empty() {
			dst.DrawHLine(lower.X, lower.Y, lower.W, ObstacleEdge, color)
		}
	}
}

// renderWarning shades the right edge where the next obstacle will enter.
func (g *Game) renderWarning(dst *core.Screen, r raster, field core.Rect) {
	w := g.scene.Warning
	if w == nil {
		return
	}
	ch := WarningFar
	if w.Intensity > 0.66 {
		ch = WarningNear
	}
	color := core.ColorDarkGray
	if w.Intensity > 0.33 {
		color = core.ColorYellow
	}
	dst.DrawRect(r.cellRect(w.Upper).Clip(field), ch, color)
	dst.DrawRect(r.cellRect(w.Lower).Clip(field), ch, color)
}

// renderTrail plots the trail bands. A terminal only has a handful of grays,
// so the fade is spread across the whole trail rather than one shade per band.
func (g *Game) renderTrail(dst *core.Screen, r raster, field core.Rect) {
	bands := g.scene.Trail
	for i, band := range bands {
		fade := float64(i) / float64(len(bands))
		color := core.GrayFromShade(uint8(float64(band.Shade) * (1 - 0.8*fade)))
		for j := 1; j < len(band.Points); j++ {
			x0, y0 := r.cell(band.Points[j-1])
			x1, y1 := r.cell(band.Points[j])
			plotLine(dst, field, x0, y0, x1, y1, TrailChar, color)
		}
	}
}

// plotLine draws a cell line with Bresenham's algorithm.
func plotLine(dst *core.Screen, clip core.Rect, x0, y0, x1, y1 int, ch rune, color core.Color) {
	dx := core.Abs(x1 - x0)
	dy := -core.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if clip.Contains(x0, y0) {
			dst.SetColored(x0, y0, ch, color)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// renderBody draws a heading arrow at the body with a short tail behind it.
func (g *Game) renderBody(dst *core.Screen, r raster, field core.Rect) {
	b := g.scene.Body
	x, y := r.cell(b.Position)

	tail := engine.Vec{
		X: b.Position.X - math.Cos(b.Angle)*b.Size/2,
		Y: b.Position.Y - math.Sin(b.Angle)*b.Size/2,
	}
	if tx, ty := r.cell(tail); (tx != x || ty != y) && field.Contains(tx, ty) {
		dst.SetColored(tx, ty, BodyTail, core.ColorYellow)
	}
	if field.Contains(x, y) {
		dst.SetColored(x, y, HeadingArrow(b.Angle), core.ColorBrightYellow)
	}
}

// HeadingArrow returns the arrow closest to an angle.
func HeadingArrow(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingArrows[octant]
}

// renderHUD draws life, score and best on the left and distance on the right.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.cfg.Field.HUDRows < 1 {
		return
	}
	s := g.scene
	left := fmt.Sprintf(" Life: %d  Score: %d  Best: %d", s.Life, s.Score, s.BestScore)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	dist := fmt.Sprintf("%06d ", int(math.Max(0, s.Distance)))
	dst.DrawTextColored(dst.Width()-len(dist), 0, dist, core.ColorCyan)
}

// renderOverlay draws phase messages over the field.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.scene.Phase == engine.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.scene.Score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.scene.Phase == engine.PhaseIdle:
		sub := "Press SPACE to fly"
		if g.scene.Life < g.cfg.Game.Lives {
			sub = fmt.Sprintf("Crashed! %d lives left  |  SPACE to fly", g.scene.Life)
		}
		g.drawCenteredMessage(dst, g.Title(), sub)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(runeLen(title), runeLen(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	// Draw text
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}

func runeLen(s string) int {
	return len([]rune(s))
}
