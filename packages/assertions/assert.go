package assertions

import (
	"fmt"

	"github.com/abdul-hamid-achik/testy/packages/comparator"
)

// True fails when condition is false.
func True(condition bool, msgAndArgs ...any) error {
	if condition {
		return nil
	}
	return Fail(msgAndArgs...)
}

// False fails when condition is true.
func False(condition bool, msgAndArgs ...any) error {
	if !condition {
		return nil
	}
	return Fail(msgAndArgs...)
}

// Fail always fails. Called without arguments it returns a failure that
// carries no message.
func Fail(msgAndArgs ...any) error {
	msg, ok := messageFrom(msgAndArgs)
	return newFailure(msg, ok)
}

// Equals fails unless expected and actual are structurally equal, as decided
// by comparator.DeepEqual.
func Equals(expected, actual any, msgAndArgs ...any) error {
	if comparator.DeepEqual(expected, actual) {
		return nil
	}
	return mismatch(msgAndArgs, expected, actual)
}

// NotEquals fails when unexpected and actual are structurally equal.
func NotEquals(unexpected, actual any, msgAndArgs ...any) error {
	if !comparator.DeepEqual(unexpected, actual) {
		return nil
	}
	return unwantedMatch(msgAndArgs, unexpected, actual)
}

// Same fails unless expected and actual share the same storage.
func Same(expected, actual any, msgAndArgs ...any) error {
	if comparator.SameReference(expected, actual) {
		return nil
	}
	return mismatch(msgAndArgs, expected, actual)
}

// NotSame fails when unexpected and actual share the same storage.
func NotSame(unexpected, actual any, msgAndArgs ...any) error {
	if !comparator.SameReference(unexpected, actual) {
		return nil
	}
	return unwantedMatch(msgAndArgs, unexpected, actual)
}

// Null fails when value is present. Typed nil pointers, slices and maps count
// as absent.
func Null(value any, msgAndArgs ...any) error {
	if comparator.Of(value).IsAbsent() {
		return nil
	}
	return withPrefix(msgAndArgs, "expected null, got "+comparator.Display(value))
}

// NotNull fails when value is absent.
func NotNull(value any, msgAndArgs ...any) error {
	if !comparator.Of(value).IsAbsent() {
		return nil
	}
	return withPrefix(msgAndArgs, "expected non-null, got null")
}

// EqualsWithin fails unless expected and actual are equal with numeric leaves
// allowed to differ by epsilon. A negative or NaN epsilon always fails.
func EqualsWithin(expected, actual any, epsilon float64, msgAndArgs ...any) error {
	ok, err := comparator.ToleranceEqual(expected, actual, epsilon)
	if err != nil {
		return withPrefix(msgAndArgs, err.Error())
	}
	if ok {
		return nil
	}
	return mismatch(msgAndArgs, expected, actual)
}

// NotEqualsWithin fails when unexpected and actual are equal with numeric
// leaves allowed to differ by epsilon. A negative or NaN epsilon always fails.
func NotEqualsWithin(unexpected, actual any, epsilon float64, msgAndArgs ...any) error {
	ok, err := comparator.ToleranceEqual(unexpected, actual, epsilon)
	if err != nil {
		return withPrefix(msgAndArgs, err.Error())
	}
	if !ok {
		return nil
	}
	return unwantedMatch(msgAndArgs, unexpected, actual)
}

// JSONEquals fails unless two JSON documents are structurally equal. Object
// key order and insignificant whitespace are ignored.
func JSONEquals(expected, actual []byte, msgAndArgs ...any) error {
	want, err := comparator.ParseJSON(expected)
	if err != nil {
		return withPrefix(msgAndArgs, fmt.Sprintf("expected document: %v", err))
	}
	got, err := comparator.ParseJSON(actual)
	if err != nil {
		return withPrefix(msgAndArgs, fmt.Sprintf("actual document: %v", err))
	}
	return Equals(want, got, msgAndArgs...)
}

// JSONEqualsWithin is JSONEquals with numbers allowed to differ by epsilon.
func JSONEqualsWithin(expected, actual []byte, epsilon float64, msgAndArgs ...any) error {
	want, err := comparator.ParseJSON(expected)
	if err != nil {
		return withPrefix(msgAndArgs, fmt.Sprintf("expected document: %v", err))
	}
	got, err := comparator.ParseJSON(actual)
	if err != nil {
		return withPrefix(msgAndArgs, fmt.Sprintf("actual document: %v", err))
	}
	return EqualsWithin(want, got, epsilon, msgAndArgs...)
}

// First returns the first non-nil error, or nil.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// mismatch renders both values, with their types when the text alone would
// look the same.
func mismatch(msgAndArgs []any, expected, actual any) error {
	e, a := comparator.Display(expected), comparator.Display(actual)
	if e == a {
		if te, ta := typeName(expected), typeName(actual); te != ta {
			e, a = te+"("+e+")", ta+"("+a+")"
		}
	}
	return withPrefix(msgAndArgs, "\nexpected:  "+e+"\nactual:    "+a)
}

// typeName names the Go type behind v. Sequences converted from JSON carry
// only their element type.
func typeName(v any) string {
	if cv, ok := v.(comparator.Value); ok {
		if cv.Kind() == comparator.Sequence {
			return "[]" + cv.Type().String()
		}
		if cv.Type() != nil {
			return cv.Type().String()
		}
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func unwantedMatch(msgAndArgs []any, unexpected, actual any) error {
	return withPrefix(msgAndArgs, "\nunexpected:  "+comparator.Display(unexpected)+
		"\nactual:      "+comparator.Display(actual))
}

// withPrefix builds "<message> : <detail>", or just the detail when the
// caller gave no message.
func withPrefix(msgAndArgs []any, detail string) error {
	msg, _ := messageFrom(msgAndArgs)
	if msg == "" {
		if len(detail) > 0 && detail[0] == '\n' {
			detail = detail[1:]
		}
		return newFailure(detail, true)
	}
	return newFailure(msg+" : "+detail, true)
}
