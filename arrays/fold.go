package arrays

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Max returns the largest element of seq, skipping NaN.
// It returns -Inf when seq holds no comparable element.
func Max[T constraints.Float](seq []T) T {
	return fold(seq, T(math.Inf(-1)), func(best, v T) bool { return v > best })
}

// Min returns the smallest element of seq, skipping NaN.
// It returns +Inf when seq holds no comparable element.
func Min[T constraints.Float](seq []T) T {
	return fold(seq, T(math.Inf(1)), func(best, v T) bool { return v < best })
}

func fold[T constraints.Float](seq []T, identity T, better func(best, v T) bool) T {
	best := identity
	for _, v := range seq {
		if math.IsNaN(float64(v)) {
			continue
		}
		if better(best, v) {
			best = v
		}
	}
	return best
}
