package layout

import (
	"math"

	"github.com/Krispeckt/flexlay/internal/core/geom"
)

// valueKind distinguishes the four forms a length can take (spec §4.1).
type valueKind int

const (
	valueUndefined valueKind = iota
	valueAuto
	valuePoint
	valuePercent
)

// Value represents a length that may be absolute, a percentage, auto, or
// undefined. NaN on the raw float is never propagated arithmetically —
// inputs are normalized to valueUndefined at construction time instead
// (spec §4.1, "NaN is treated as Undefined on input").
type Value struct {
	kind  valueKind
	value float64
}

// Undefined is the zero Value: unset, not participating in layout.
var Undefined = Value{kind: valueUndefined}

// Auto represents the `auto` keyword.
var Auto = Value{kind: valueAuto}

// Point constructs an absolute length in pixels. A NaN input collapses to
// Undefined, matching the `setPosition(EDGE_LEFT, NaN)` "clear" idiom
// exercised throughout the fixture set (spec §9).
func Point(v float64) Value {
	if math.IsNaN(v) {
		return Undefined
	}
	return Value{kind: valuePoint, value: v}
}

// Percent constructs a percentage length. A NaN input collapses to
// Undefined for the same reason as Point.
func Percent(v float64) Value {
	if math.IsNaN(v) {
		return Undefined
	}
	return Value{kind: valuePercent, value: v}
}

// IsUndefined reports whether the value carries no information.
func (v Value) IsUndefined() bool { return v.kind == valueUndefined }

// IsAuto reports whether the value is the `auto` keyword.
func (v Value) IsAuto() bool { return v.kind == valueAuto }

// IsDefinite reports whether the value resolves to a concrete number
// given any defined reference (i.e. it is neither Auto nor Undefined).
func (v Value) IsDefinite() bool {
	return v.kind == valuePoint || v.kind == valuePercent
}

// Resolve computes the value against a containing-block reference length
// per spec §4.1:
//
//	Absolute(x)  -> x
//	Percent(p)   -> p * reference / 100, or Undefined if reference is Undefined
//	Auto         -> Undefined
//	Undefined    -> Undefined
func (v Value) Resolve(reference float64) float64 {
	switch v.kind {
	case valuePoint:
		return v.value
	case valuePercent:
		if math.IsNaN(reference) {
			return math.NaN()
		}
		return v.value * reference / 100
	default:
		return math.NaN()
	}
}

// ResolveOr is Resolve but substitutes fallback when the result is
// Undefined (NaN).
func (v Value) ResolveOr(reference, fallback float64) float64 {
	r := v.Resolve(reference)
	if math.IsNaN(r) {
		return fallback
	}
	return r
}

func isUndefined(f float64) bool { return math.IsNaN(f) }

// valueLess implements spec §4.1's "Undefined comparisons propagate to
// false" rule: NaN < x and x < NaN are both false, so clamps never
// accidentally fire against an unset bound.
func valueLess(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return a < b
}

// clampDefined clamps v to [lo, hi], skipping bounds that are Undefined.
// When both bounds are defined and contradictory (hi < lo), min wins
// (spec invariant 7).
func clampDefined(v, lo, hi float64) float64 {
	out := v
	if !math.IsNaN(lo) && valueLess(out, lo) {
		out = lo
	}
	if !math.IsNaN(hi) && valueLess(hi, out) {
		out = hi
	}
	if !math.IsNaN(lo) && !math.IsNaN(hi) && hi < lo {
		out = lo
	}
	return out
}

func addDefined(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return a + b
}

func maxDefined(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return geom.MaxF64(a, b)
}
