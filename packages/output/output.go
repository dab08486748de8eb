package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/abdul-hamid-achik/testy/packages/core/runner"
)

// Formats lists the names accepted by New.
var Formats = []string{"console", "json", "tap", "junit"}

// Reporter is a runner.Reporter that remembers its first write error.
type Reporter interface {
	runner.Reporter
	Err() error
}

// New returns a reporter for format writing to w. Console options apply only
// to the console format, which also writes failures to its error stream.
func New(format string, w io.Writer, opts ...ConsoleOption) (Reporter, error) {
	switch strings.ToLower(format) {
	case "", "console":
		return NewConsoleReporter(append([]ConsoleOption{WithWriter(w)}, opts...)...), nil
	case "json":
		return NewJSONReporter(JSONWithWriter(w)), nil
	case "tap":
		return NewTAPReporter(TAPWithWriter(w)), nil
	case "junit":
		return NewJUnitReporter(JUnitWithWriter(w)), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Flusher is implemented by reporters that hold output until Flush.
type Flusher interface {
	Flush() error
}

// Flush flushes r if it holds output, and returns its first write error.
func Flush(r Reporter) error {
	if f, ok := r.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return err
		}
	}
	return r.Err()
}

// Multi fans every call out to each reporter in order.
type Multi []Reporter

func (m Multi) ReportFailure(result *runner.Result) {
	for _, r := range m {
		r.ReportFailure(result)
	}
}

func (m Multi) ReportSummary(report *runner.Report) {
	for _, r := range m {
		r.ReportSummary(report)
	}
}

// Flush flushes every member that holds output.
func (m Multi) Flush() error {
	var first error
	for _, r := range m {
		if err := Flush(r); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Err returns the first error reported by any member.
func (m Multi) Err() error {
	for _, r := range m {
		if err := r.Err(); err != nil {
			return err
		}
	}
	return nil
}
