package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(V2(10, 20), 4, 6)
	if r.X != 8 || r.Y != 17 || r.Right() != 12 || r.Top() != 23 {
		t.Errorf("RectAround() = %+v, expected x=8 y=17 right=12 top=23", r)
	}
	if c := r.Center(); c.X() != 10 || c.Y() != 20 {
		t.Errorf("Center() = %v, expected (10, 20)", c)
	}
}

func TestRectRayDistance(t *testing.T) {
	floor := NewRect(-100, -10, 200, 10) // top edge at y=0

	tests := []struct {
		name     string
		origin   Vec2
		dir      Vec2
		hit      bool
		distance float32
	}{
		{"straight down", V2(0, 20), V2(0, -1), true, 20},
		{"pointing away", V2(0, 20), V2(0, 1), false, 0},
		{"beside floor", V2(150, 20), V2(0, -1), false, 0},
		{"inside", V2(0, -5), V2(0, -1), true, 0},
		{"sideways into edge", V2(-150, -5), V2(1, 0), true, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := floor.RayDistance(tc.origin, tc.dir)
			if ok != tc.hit {
				t.Fatalf("RayDistance() hit = %v, expected %v", ok, tc.hit)
			}
			if ok && !approx(d, tc.distance) {
				t.Errorf("RayDistance() = %v, expected %v", d, tc.distance)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if ClampInt(-5, 0, 10) != 0 || ClampInt(15, 0, 10) != 10 || ClampInt(5, 0, 10) != 5 {
		t.Error("ClampInt should restrict values to [0, 10]")
	}
}
