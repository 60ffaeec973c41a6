package mathhelp

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the tolerance below which a coefficient counts as zero.
const Epsilon = 1e-9

func BetweenInc[T constraints.Ordered](f, p, q T) bool {
	if p <= q {
		return p <= f && f <= q
	}
	return q <= f && f <= p
}

func NearlyZero[T constraints.Float](f T) bool {
	return math.Abs(float64(f)) < Epsilon
}

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// EuclidianMod is the remainder of d/m with the sign of m.
func EuclidianMod[T constraints.Float](d, m T) T {
	r := T(math.Mod(float64(d), float64(m)))
	if (r < 0 && m > 0) || (r > 0 && m < 0) {
		return r + m
	}
	return r
}

// NormalizeDegrees maps an angle onto (-180, 180].
func NormalizeDegrees(deg float64) float64 {
	n := 180 - EuclidianMod(180-deg, 360)
	if n == -180 {
		return 180
	}
	return n
}

func AllFinite(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
