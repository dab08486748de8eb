package comparator

import (
	"math"
	"reflect"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// opaqueOptions lets cmp look at unexported fields instead of panicking on
// them, and treats NaN as equal to NaN as CanonicalCompare does. Types with an
// Equal method are still compared through that method.
var opaqueOptions = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
}

// DeepEqual reports whether a and b are structurally equal.
//
// Two absent values are equal to each other and to nothing else. Sequences are
// equal when they have the same element type, the same length and pairwise
// equal elements. Scalars must have the same Go type and value; floats are
// compared with CanonicalCompare, so NaN equals NaN and -0 differs from +0.
// Opaque values are compared with go-cmp, except funcs, which are equal when
// they point at the same code. A self-referencing sequence is cut at the
// point it repeats, and two cuts of the same type are equal.
func DeepEqual(a, b any) bool {
	return deepEqual(Of(a), Of(b))
}

func deepEqual(a, b Value) bool {
	if a.kind == Absent || b.kind == Absent {
		return a.kind == b.kind
	}

	if a.kind == Sequence || b.kind == Sequence {
		if a.kind != b.kind || a.typ != b.typ || a.cyclic != b.cyclic || len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !deepEqual(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	}

	if a.kind != b.kind || a.typ != b.typ {
		return false
	}

	switch a.kind {
	case Bool:
		return a.b == b.b
	case Int:
		return a.i == b.i
	case Uint:
		return a.u == b.u
	case Float:
		return CanonicalCompare(a.f, b.f) == 0
	case String:
		return a.s == b.s
	default:
		if a.typ.Kind() == reflect.Func {
			return reflect.ValueOf(a.ref).Pointer() == reflect.ValueOf(b.ref).Pointer()
		}
		return cmp.Equal(a.ref, b.ref, opaqueOptions)
	}
}

// CanonicalCompare orders two floats totally: -0 sorts before +0, and NaN is
// equal to itself and greater than every other value, +Inf included.
func CanonicalCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	aBits, bBits := canonicalBits(a), canonicalBits(b)
	switch {
	case aBits == bBits:
		return 0
	case aBits < bBits:
		return -1
	default:
		return 1
	}
}

func canonicalBits(f float64) int64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	return int64(math.Float64bits(f))
}

// SameReference reports whether a and b share the same storage.
//
// Pointers, maps, channels and funcs are compared by address, slices by
// backing array, length and capacity, and strings by their data pointer.
// Numbers, booleans, arrays and structs carry no identity and fall back to
// DeepEqual, so SameReference(x, x) holds for every x.
func SameReference(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	nilA, nilB := isNil(ra), isNil(rb)
	if nilA || nilB {
		return nilA && nilB
	}
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len() && ra.Cap() == rb.Cap()
	case reflect.String:
		sa, sb := ra.String(), rb.String()
		return len(sa) == len(sb) && unsafe.StringData(sa) == unsafe.StringData(sb)
	default:
		return DeepEqual(a, b)
	}
}

func isNil(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer,
		reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
