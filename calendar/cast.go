package calendar

import (
	"golang.org/x/exp/constraints"
)

// Integer is the set of built-in integer types accepted by the checked constructors.
type Integer = constraints.Integer

// toInt64 is the single checked conversion step used at every public entry point.
// It reports whether the conversion was exact; only unsigned values above math.MaxInt64 fail.
// Range checks then happen on the int64 before narrowing to the storage width.
func toInt64[T Integer](v T) (int64, bool) {
	i := int64(v)
	if v > 0 && i < 0 {
		return 0, false
	}

	return i, true
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// floorMod is the remainder matching floorDiv, always in [0, b) for positive b.
func floorMod(a, b int32) int32 {
	return a - floorDiv(a, b)*b
}
