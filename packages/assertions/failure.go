package assertions

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// defaultFailureText is what Error returns for a failure raised without a message.
const defaultFailureText = "test failed"

// Failure is the error returned by a check that does not hold. It records the
// caller's message, if any, and the stack at the point of failure.
type Failure struct {
	message    string
	hasMessage bool
	err        error
}

func newFailure(message string, hasMessage bool) *Failure {
	text := message
	if !hasMessage {
		text = defaultFailureText
	}
	return &Failure{
		message:    message,
		hasMessage: hasMessage,
		err:        errors.New(text),
	}
}

// Message returns the failure message and whether one was given. A failure
// raised by Fail() has no message, which is different from Fail("").
func (f *Failure) Message() (string, bool) {
	return f.message, f.hasMessage
}

func (f *Failure) Error() string {
	return f.err.Error()
}

// StackTrace returns the stack recorded when the failure was created.
func (f *Failure) StackTrace() errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}
	if st, ok := f.err.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// Format prints the message for %s and %v, and the message followed by the
// stack trace for %+v.
func (f *Failure) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v", f.err)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, f.Error())
	case 'q':
		fmt.Fprintf(s, "%q", f.Error())
	}
}

// IsFailure reports whether err is, or wraps, a *Failure.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}

// messageFrom turns msgAndArgs into a message. The bool is false when no
// message was given at all.
func messageFrom(msgAndArgs []any) (string, bool) {
	switch len(msgAndArgs) {
	case 0:
		return "", false
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s, true
		}
		return fmt.Sprintf("%+v", msgAndArgs[0]), true
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...), true
		}
		return fmt.Sprint(msgAndArgs...), true
	}
}
