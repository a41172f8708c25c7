package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is the 2D vector used across the host boundary.
type Vec2 = mgl32.Vec2

// V2 is shorthand for building a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged instead of NaN.
func Normalize(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// AngleDegrees returns atan2(v.y, v.x) in degrees.
func AngleDegrees(v Vec2) float32 {
	return mgl32.RadToDeg(float32(math.Atan2(float64(v.Y()), float64(v.X()))))
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float32 {
	return b.Sub(a).Len()
}
