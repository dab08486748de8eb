package comparator

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ErrInvalidEpsilon is returned by ToleranceEqual when epsilon is negative or NaN.
var ErrInvalidEpsilon = errors.New("epsilon must be a non-negative number")

// ToleranceEqual reports whether a and b are equal when numeric leaves may
// differ by at most epsilon.
//
// Two numbers are tolerance-equal when CanonicalCompare reports them equal or
// their absolute difference is <= epsilon. Integers are widened to float64;
// two float32 values are compared in float32 precision. Sequences of any rank
// are tolerance-equal when both are absent, or both have the same length and
// pairwise tolerance-equal elements. A sequence never equals a non-sequence.
// Opaque values of the same type are compared with go-cmp, with their float
// fields held to the same tolerance. Other leaves fall back to DeepEqual.
func ToleranceEqual(a, b any, epsilon float64) (bool, error) {
	if epsilon < 0 || math.IsNaN(epsilon) {
		return false, fmt.Errorf("%w, got %v", ErrInvalidEpsilon, epsilon)
	}
	return toleranceEqual(Of(a), Of(b), epsilon), nil
}

func toleranceEqual(a, b Value, epsilon float64) bool {
	if a.kind == Absent || b.kind == Absent {
		return a.kind == b.kind
	}

	if a.kind == Sequence || b.kind == Sequence {
		if a.kind != b.kind || a.cyclic != b.cyclic || len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !toleranceEqual(a.elems[i], b.elems[i], epsilon) {
				return false
			}
		}
		return true
	}

	if isNumeric(a) && isNumeric(b) {
		if a.kind != Float && b.kind != Float && integersEqual(a, b) {
			return true
		}
		return floatsWithin(a, b, epsilon)
	}
	if a.kind == Opaque && b.kind == Opaque && a.typ == b.typ && a.typ.Kind() != reflect.Func {
		// opaqueOptions already equates NaNs.
		return cmp.Equal(a.ref, b.ref, opaqueOptions, cmpopts.EquateApprox(0, epsilon))
	}
	return deepEqual(a, b)
}

func isNumeric(v Value) bool {
	return v.kind == Int || v.kind == Uint || v.kind == Float
}

// integersEqual compares two integer scalars by value across signedness and
// width, without going through float64.
func integersEqual(a, b Value) bool {
	switch {
	case a.kind == Int && b.kind == Int:
		return a.i == b.i
	case a.kind == Uint && b.kind == Uint:
		return a.u == b.u
	case a.kind == Int:
		return a.i >= 0 && uint64(a.i) == b.u
	default:
		return b.i >= 0 && uint64(b.i) == a.u
	}
}

func asFloat(v Value) float64 {
	switch v.kind {
	case Int:
		return float64(v.i)
	case Uint:
		return float64(v.u)
	default:
		return v.f
	}
}

func floatsWithin(a, b Value, epsilon float64) bool {
	x, y := asFloat(a), asFloat(b)
	if CanonicalCompare(x, y) == 0 {
		return true
	}
	if a.bits == 32 && b.bits == 32 {
		d := float32(x) - float32(y)
		if d < 0 {
			d = -d
		}
		return d <= float32(epsilon)
	}
	return math.Abs(x-y) <= epsilon
}
