package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// MaxF64 returns the greater of two doubles.
func MaxF64(a, b float64) float64 {
	return math.Max(a, b)
}

// Fixed-Point Arithmetic

// Unfix converts a fixed.Int26_6 value (1/64 fractional precision) to float64.
func Unfix(x fixed.Int26_6) float64 {
	const shift, mask = 6, 1<<6 - 1
	if x >= 0 {
		return float64(x>>shift) + float64(x&mask)/64
	}
	x = -x
	if x >= 0 {
		return -(float64(x>>shift) + float64(x&mask)/64)
	}
	return 0
}

// Fix converts a float64 value to fixed.Int26_6 (1/64 pixel precision).
func Fix(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}
