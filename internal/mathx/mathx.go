// Package mathx holds small generic numeric helpers shared by the
// rasterizer, the compositor and the 3D projector.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp255 rounds a float channel value and limits it to a byte.
func Clamp255(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Lerp interpolates between a and b by t in [0, 1].
func Lerp[T Number](a, b T, t float64) float64 {
	return float64(a) + (float64(b)-float64(a))*t
}
