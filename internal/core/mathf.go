// Package core provides fundamental types and utilities for the platformer.
// It contains no Bubble Tea or host dependencies to keep gameplay math pure
// and testable.
package core

import "math"

// Clamp restricts f to [lo, hi].
// When lo > hi the lower bound wins for values below it.
func Clamp(f, lo, hi float32) float32 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Sign returns -1 for negative values and 1 otherwise (zero included).
func Sign(f float32) float32 {
	if f < 0 {
		return -1
	}
	return 1
}

// Abs returns the absolute value of f.
func Abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// Repeat wraps f into [0, length).
func Repeat(f, length float32) float32 {
	return f - float32(math.Floor(float64(f/length)))*length
}

// LerpUnclamped interpolates between a and b without clamping t.
func LerpUnclamped(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return LerpUnclamped(a, b, Clamp(t, 0, 1))
}

// MoveTowards moves start towards end by at most maxDelta.
// A negative maxDelta leaves start unchanged.
func MoveTowards(start, end, maxDelta float32) float32 {
	if Abs(end-start) <= maxDelta {
		return end
	}
	if maxDelta < 0 {
		return start
	}
	return start + Sign(end-start)*maxDelta
}

// DeltaAngleDegrees returns the shortest signed difference from current to
// target, in degrees, within (-180, 180].
func DeltaAngleDegrees(current, target float32) float32 {
	d := Repeat(target-current, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

// MoveTowardsAngle rotates current towards target by at most maxDelta degrees,
// taking the short way around.
func MoveTowardsAngle(current, target, maxDelta float32) float32 {
	if maxDelta < 0 {
		return current
	}
	diff := DeltaAngleDegrees(current, target)
	if -maxDelta < diff && diff < maxDelta {
		return target
	}
	return MoveTowards(current, current+diff, maxDelta)
}
