package common

import "cmp"

// Abs returns the absolute value of an integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to the closed range [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AbsDiff returns |a - b| without overflowing unsigned operands
func AbsDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// Wrap maps v into [0, n) treating the axis as circular
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
