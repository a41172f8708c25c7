package tui

import (
	"math"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/behavior"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/scripts"
)

// World units covered by one cell at zoom 1. Cells are about twice as tall
// as they are wide, so rows cover twice the distance.
const (
	unitsPerCol = 20
	unitsPerRow = 40
)

// Camera maps world space onto a grid of terminal cells.
// Y grows upward in the world and downward on screen.
type Camera struct {
	Center core.Vec2
	Zoom   float32
	Width  int
	Height int
}

func (c Camera) scale() (sx, sy float32) {
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	return z / unitsPerCol, z / unitsPerRow
}

// WorldToCell returns the cell containing p.
func (c Camera) WorldToCell(p core.Vec2) (x, y int) {
	sx, sy := c.scale()
	fx := (p.X()-c.Center.X())*sx + float32(c.Width)/2
	fy := (c.Center.Y()-p.Y())*sy + float32(c.Height)/2
	return int(math.Floor(float64(fx))), int(math.Floor(float64(fy)))
}

// CellToWorld returns the world position at the center of cell (x, y).
func (c Camera) CellToWorld(x, y int) core.Vec2 {
	sx, sy := c.scale()
	wx := c.Center.X() + (float32(x)+0.5-float32(c.Width)/2)/sx
	wy := c.Center.Y() - (float32(y)+0.5-float32(c.Height)/2)/sy
	return core.V2(wx, wy)
}

// armGlyph picks the line glyph closest to an angle in degrees.
func armGlyph(deg float32) rune {
	switch a := core.Repeat(deg+22.5, 180); {
	case a < 45:
		return '-'
	case a < 90:
		return '/'
	case a < 135:
		return '|'
	default:
		return '\\'
	}
}

// DrawScene renders the level's sprites through cam.
// Solid sprites fill their collider box; the rest are single glyphs drawn
// in depth order on top. Entities driven by a pivot are drawn as a line
// pointing along their rotation.
func DrawScene(s *core.Screen, l *level.Level, cam Camera) {
	s.Clear()
	w := l.World

	var points []level.Sprite
	for _, sp := range l.Sprites() {
		if !sp.Solid {
			points = append(points, sp)
			continue
		}
		box, ok := w.Collider(sp.ID)
		if !ok {
			continue
		}
		x0, y0 := cam.WorldToCell(core.V2(box.X, box.Top()))
		x1, y1 := cam.WorldToCell(core.V2(box.Right(), box.Y))
		s.FillRect(x0, y0, core.MaxInt(x1-x0, 1), core.MaxInt(y1-y0, 1), sp.Glyph, sp.Color)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return w.Depth(points[i].ID) < w.Depth(points[j].ID)
	})
	for _, sp := range points {
		x, y := cam.WorldToCell(w.WorldPosition(sp.ID))
		glyph := sp.Glyph
		if _, isArm := behavior.Get[*scripts.Pivot](l.Runtime, sp.ID); isArm {
			deg := w.WorldRotation(sp.ID)
			rad := float64(deg) * math.Pi / 180
			dx := float32(math.Cos(rad)) * core.Sign(w.WorldScale(sp.ID).X())
			dy := float32(math.Sin(rad))
			x += int(math.Round(float64(dx)))
			y -= int(math.Round(float64(dy)))
			glyph = armGlyph(core.AngleDegrees(core.V2(dx, dy)))
		}
		s.SetColored(x, y, glyph, sp.Color)
	}
}
