package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/testy/packages/assertions"
	"github.com/abdul-hamid-achik/testy/packages/core/runner"
)

// TAPReporter formats reports in TAP (Test Anything Protocol) version 13.
// Reports accumulate until Flush, which writes a single plan covering all of
// them.
type TAPReporter struct {
	writer  io.Writer
	reports []*runner.Report
	err     error
}

type TAPOption func(*TAPReporter)

func NewTAPReporter(opts ...TAPOption) *TAPReporter {
	r := &TAPReporter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func TAPWithWriter(w io.Writer) TAPOption {
	return func(r *TAPReporter) {
		r.writer = w
	}
}

func (r *TAPReporter) ReportFailure(result *runner.Result) {
	// Failures are written with the plan in Flush
}

func (r *TAPReporter) ReportSummary(report *runner.Report) {
	r.reports = append(r.reports, report)
}

// Flush writes the accumulated TAP output
func (r *TAPReporter) Flush() error {
	var b strings.Builder
	var total, passed, failed, skipped int
	for _, report := range r.reports {
		total += report.Total
		passed += report.Passed
		failed += report.Failed
		skipped += report.Skipped
	}

	// TAP version header
	b.WriteString("TAP version 13\n")

	// Test plan
	fmt.Fprintf(&b, "1..%d\n", total)

	number := 0
	for _, report := range r.reports {
		if report.Name != "" {
			fmt.Fprintf(&b, "# %s\n", report.Name)
		}

		for _, res := range report.Results {
			number++

			if res.Skipped {
				reason := res.SkipReason
				if reason == "" {
					reason = "SKIP"
				}
				fmt.Fprintf(&b, "ok %d - %s # SKIP %s\n", number, res.Name, reason)
				continue
			}

			if res.Passed {
				fmt.Fprintf(&b, "ok %d - %s\n", number, res.Name)
				continue
			}

			severity := "error"
			if assertions.IsFailure(res.Error) {
				severity = "fail"
			}
			fmt.Fprintf(&b, "not ok %d - %s\n", number, res.Name)
			b.WriteString("  ---\n")
			fmt.Fprintf(&b, "  message: %s\n", escapeYAML(errorText(res.Error)))
			fmt.Fprintf(&b, "  severity: %s\n", severity)
			fmt.Fprintf(&b, "  duration_ms: %.3f\n", millis(res.Duration))
			b.WriteString("  ...\n")
		}
	}

	fmt.Fprintf(&b, "# pass %d\n", passed)
	fmt.Fprintf(&b, "# fail %d\n", failed)
	if skipped > 0 {
		fmt.Fprintf(&b, "# skip %d\n", skipped)
	}

	r.reports = nil
	if _, err := io.WriteString(r.writer, b.String()); err != nil {
		r.err = err
	}
	return r.err
}

// Err returns the error from writing the report, if any.
func (r *TAPReporter) Err() error {
	return r.err
}

func escapeYAML(s string) string {
	// Simple YAML escaping - wrap in quotes if contains special chars
	if strings.ContainsAny(s, ":\n\"'[]{}#&*!|>%@`\\") {
		s = strings.ReplaceAll(s, "\\", "\\\\")
		s = strings.ReplaceAll(s, "\"", "\\\"")
		s = strings.ReplaceAll(s, "\n", "\\n")
		return "\"" + s + "\""
	}
	return s
}
