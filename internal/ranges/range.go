// Package ranges implements the Range Lattice of spec.md §2 component 3 and
// §3.4: integer intervals plus a relational constraint store, and the
// interval arithmetic spec.md §4.5 specifies.
package ranges

import "math"

// Range is a closed interval over 64-bit signed integers, or "unknown"
// (spec.md §3.4 / GLOSSARY). The zero value has Known == false, so it is
// the unknown range; Unknown() is the explicit way to write it.
type Range struct {
	Min, Max int64
	Known    bool
}

// Unknown is the lattice top element.
func Unknown() Range {
	return Range{Known: false}
}

// Single returns the singleton range [v, v].
func Single(v int64) Range {
	return Range{Min: v, Max: v, Known: true}
}

// Interval returns [min, max].
func Interval(min, max int64) Range {
	return Range{Min: min, Max: max, Known: true}
}

// AtLeast returns [min, +∞).
func AtLeast(min int64) Range {
	return Range{Min: min, Max: math.MaxInt64, Known: true}
}

// Add implements the interval-arithmetic addition rule of spec.md §4.5:
// "unknown is absorbing for addition/subtraction; constants propagate
// exactly."
func Add(a, b Range) Range {
	if !a.Known || !b.Known {
		return Unknown()
	}
	return Interval(addClamped(a.Min, b.Min), addClamped(a.Max, b.Max))
}

// Sub implements interval subtraction, same absorption rule as Add.
func Sub(a, b Range) Range {
	if !a.Known || !b.Known {
		return Unknown()
	}
	return Interval(addClamped(a.Min, -b.Max), addClamped(a.Max, -b.Min))
}

// addClamped adds two int64s, saturating at the int64 bounds instead of
// wrapping — a silently wrapped bound would let an out-of-range interval
// look small and in-bounds to the checker in §4.6.
func addClamped(a, b int64) int64 {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		if b > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return sum
}

// AddConst shifts a range by a known constant; used for the `x = y + c` /
// `x = c + y` / `x = y - c` forms of spec.md §4.5.
func AddConst(a Range, c int64) Range {
	return Add(a, Single(c))
}

// Widen returns the lattice top, used by the loop widening pass of spec.md
// §4.5 ("widen every variable assigned anywhere inside the body to
// 'unknown'").
func Widen(Range) Range {
	return Unknown()
}

// ProvablyNegative reports whether every value in r is < 0 — spec.md §4.6:
// "If index-min < 0 (and known)".
func (r Range) ProvablyNegative() bool {
	return r.Known && r.Max < 0
}

// ProvablyAtLeast reports whether every value in r is >= bound. The bounds
// checker (internal/sema) compares the index maximum against the length
// directly rather than calling this helper.
func (r Range) ProvablyAtLeast(bound int64) bool {
	return r.Known && r.Min >= bound
}

// Relation is the relational constraint of spec.md §3.4: "(x, y, c) meaning
// x − y ≤ c."
type Relation struct {
	X, Y string
	C    int64
}
