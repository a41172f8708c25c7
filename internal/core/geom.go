package core

// Rect is an axis-aligned box in world units.
// Y grows upward: Y is the bottom edge, Y+H the top edge.
type Rect struct {
	X, Y float32 // Bottom-left corner
	W, H float32
}

// NewRect creates a rectangle from its bottom-left corner and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a rectangle of the given size centered on c.
func RectAround(c Vec2, w, h float32) Rect {
	return Rect{X: c.X() - w/2, Y: c.Y() - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float32 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Intersects returns true if the rectangles overlap.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
}

// Contains returns true if p lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X() >= r.X && p.X() <= r.Right() && p.Y() >= r.Y && p.Y() <= r.Top()
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X()
	r.Y += d.Y()
	return r
}

// RayDistance returns the distance along the normalized direction dir from
// origin to the first point of r, and whether the ray hits at all.
// Origins inside the rectangle hit at distance 0.
func (r Rect) RayDistance(origin, dir Vec2) (float32, bool) {
	tmin := float32(0)
	tmax := float32(maxFloat32)

	lo := [2]float32{r.X, r.Y}
	hi := [2]float32{r.Right(), r.Top()}
	for axis := 0; axis < 2; axis++ {
		o, d := origin[axis], dir[axis]
		if d == 0 {
			if o < lo[axis] || o > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - o) / d
		t2 := (hi[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

const maxFloat32 = 3.40282346638528859811704183484516925440e+38

// ClampInt restricts val to be within [min, max].
func ClampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// MinInt returns the smaller of two integers.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxInt returns the larger of two integers.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
