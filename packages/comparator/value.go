package comparator

import (
	"reflect"
)

// Kind identifies which variant of a Value is populated.
type Kind uint8

const (
	Absent Kind = iota
	Bool
	Int
	Uint
	Float
	String
	Sequence
	Opaque
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case String:
		return "string"
	case Sequence:
		return "sequence"
	case Opaque:
		return "opaque"
	default:
		return "unknown"
	}
}

var (
	valueType   = reflect.TypeOf(Value{})
	anyType     = reflect.TypeOf((*any)(nil)).Elem()
	boolType    = reflect.TypeOf(false)
	float64Type = reflect.TypeOf(float64(0))
	stringType  = reflect.TypeOf("")
	objectType  = reflect.TypeOf(map[string]any(nil))
)

// Value is the normalized form every comparison works on. The zero Value is
// Absent.
type Value struct {
	kind Kind
	// typ is the Go type of a scalar or opaque value, and the element type
	// of a sequence.
	typ reflect.Type

	b    bool
	i    int64
	u    uint64
	f    float64
	bits int
	s    string

	elems []Value
	// cyclic marks a sequence that contains itself; it is cut off where the
	// repeat starts and has no elements.
	cyclic bool

	ref any
	raw string // display text for opaque values parsed from JSON
}

// Of converts a Go value into a Value. A Value passed to Of is returned as is.
func Of(v any) Value {
	if cv, ok := v.(Value); ok {
		return cv
	}
	if v == nil {
		return Value{}
	}
	return fromReflect(reflect.ValueOf(v), nil)
}

// sliceKey identifies a slice's storage while its elements are being
// converted.
type sliceKey struct {
	data uintptr
	len  int
	typ  reflect.Type
}

// fromReflect converts rv. open holds the slices currently being converted
// further up, so a slice that contains itself ends in a cyclic marker.
func fromReflect(rv reflect.Value, open map[sliceKey]bool) Value {
	if !rv.IsValid() {
		return Value{}
	}
	if rv.Type() == valueType {
		return rv.Interface().(Value)
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return Value{}
		}
		return fromReflect(rv.Elem(), open)
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return Value{}
		}
		return Value{kind: Opaque, typ: rv.Type(), ref: rv.Interface()}
	case reflect.Slice:
		if rv.IsNil() {
			return Value{}
		}
		if rv.Len() == 0 {
			return sequenceOf(rv, open)
		}
		key := sliceKey{data: rv.Pointer(), len: rv.Len(), typ: rv.Type()}
		if open[key] {
			return Value{kind: Sequence, typ: rv.Type().Elem(), cyclic: true}
		}
		if open == nil {
			open = make(map[sliceKey]bool)
		}
		open[key] = true
		defer delete(open, key)
		return sequenceOf(rv, open)
	case reflect.Array:
		return sequenceOf(rv, open)
	case reflect.Bool:
		return Value{kind: Bool, typ: rv.Type(), b: rv.Bool()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: Int, typ: rv.Type(), i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{kind: Uint, typ: rv.Type(), u: rv.Uint()}
	case reflect.Float32:
		return Value{kind: Float, typ: rv.Type(), f: rv.Float(), bits: 32}
	case reflect.Float64:
		return Value{kind: Float, typ: rv.Type(), f: rv.Float(), bits: 64}
	case reflect.String:
		return Value{kind: String, typ: rv.Type(), s: rv.String()}
	default:
		return Value{kind: Opaque, typ: rv.Type(), ref: rv.Interface()}
	}
}

func sequenceOf(rv reflect.Value, open map[sliceKey]bool) Value {
	elems := make([]Value, rv.Len())
	for i := range elems {
		elems[i] = fromReflect(rv.Index(i), open)
	}
	return Value{kind: Sequence, typ: rv.Type().Elem(), elems: elems}
}

// Kind returns the variant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Type returns the Go type of a scalar or opaque value, or the element type
// of a sequence. It is nil for Absent.
func (v Value) Type() reflect.Type {
	return v.typ
}

// IsAbsent reports whether v is Absent.
func (v Value) IsAbsent() bool {
	return v.kind == Absent
}

// Len returns the number of elements of a sequence, and 0 for anything else.
func (v Value) Len() int {
	return len(v.elems)
}

// Index returns the i-th element of a sequence. It panics if i is out of range.
func (v Value) Index(i int) Value {
	return v.elems[i]
}

// String renders v the way failure messages do.
func (v Value) String() string {
	return Display(v)
}
