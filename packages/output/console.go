package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/testy/packages/core/runner"
	"github.com/fatih/color"
)

// ConsoleReporter prints each failure to the error stream as it happens and a
// summary to the output stream at the end.
type ConsoleReporter struct {
	writer    io.Writer
	errWriter io.Writer
	verbose   bool
	noColor   bool
	err       error
}

type ConsoleOption func(*ConsoleReporter)

func NewConsoleReporter(opts ...ConsoleOption) *ConsoleReporter {
	r := &ConsoleReporter{
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithWriter sets where the summary goes.
func WithWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.writer = w
	}
}

// WithErrorWriter sets where failures go.
func WithErrorWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.errWriter = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.noColor = nc
	}
}

func (r *ConsoleReporter) paint(attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if r.noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func (r *ConsoleReporter) ReportFailure(result *runner.Result) {
	red := r.paint(color.FgRed, color.Bold)

	r.printf(r.errWriter, "%s %s\n", red("Test failed:"), result.Name)
	if result.Error != nil {
		r.printf(r.errWriter, "%+v\n", result.Error)
	}
	r.printf(r.errWriter, "\n")
}

func (r *ConsoleReporter) ReportSummary(report *runner.Report) {
	red := r.paint(color.FgRed)
	green := r.paint(color.FgGreen)
	yellow := r.paint(color.FgYellow)

	failed := fmt.Sprintf("%d failed.", report.Failed)
	if report.Failed > 0 {
		failed = red(failed)
	}

	r.printf(r.writer, "%d total tests:\n", report.Total)
	r.printf(r.writer, "    %s\n", failed)
	r.printf(r.writer, "    %s\n", green(fmt.Sprintf("%d passed.", report.Passed)))
	if report.Skipped > 0 {
		r.printf(r.writer, "    %s\n", yellow(fmt.Sprintf("%d skipped.", report.Skipped)))
	}

	if r.verbose {
		cyan := r.paint(color.FgCyan)
		t := report.Timing
		r.printf(r.writer, "    %s\n", cyan(fmt.Sprintf("time: %s (p50 %s, p95 %s, p99 %s, max %s)",
			report.Duration, t.P50, t.P95, t.P99, t.Max)))
	}
}

// Err returns the first write error, if any.
func (r *ConsoleReporter) Err() error {
	return r.err
}

func (r *ConsoleReporter) printf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil && r.err == nil {
		r.err = err
	}
}
