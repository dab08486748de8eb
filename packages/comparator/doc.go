// Package comparator decides whether two values are equal and renders values
// for failure messages.
//
// Every input is first normalized into a Value, a tagged union of:
//   - Absent: nil, or a nil pointer, slice, map, channel, func or interface
//   - Scalar: booleans, integers of any width, floats, strings
//   - Sequence: slices and arrays, converted element by element to any depth
//   - Opaque: everything else (structs, non-nil pointers, maps, ...)
//
// Two semantics are offered on top of Value: DeepEqual (exact structural
// equality) and ToleranceEqual (floating point leaves may differ by at most an
// epsilon). Both walk nested sequences with the same recursive algorithm, so a
// [][][]float32 needs no code of its own. SameReference answers the separate
// question of whether two values share the same storage.
package comparator
