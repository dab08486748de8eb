// Package testy runs small, dependency-free test programs.
//
// A test is a runner.Procedure: a function that returns nil to pass or an
// error (typically from the assertions package) to fail. Panics count as
// failures too. Run executes every procedure, prints each failure to standard
// error and a summary to standard output, and returns the number that failed:
//
//	func main() {
//		failed := testy.Run(
//			func() error { return assertions.Equals(2, 1+1, "sum") },
//			func() error { return assertions.True(strings.HasPrefix("testy", "te")) },
//		)
//		os.Exit(failed)
//	}
package testy

import (
	"io"
	"os"

	"github.com/abdul-hamid-achik/testy/packages/core/runner"
	"github.com/abdul-hamid-achik/testy/packages/output"
	"github.com/fatih/color"
)

// Run executes procs in order and returns how many failed.
func Run(procs ...runner.Procedure) int {
	return RunWith(os.Stdout, os.Stderr, procs...)
}

// RunWith is Run with the summary written to out and failures to errOut.
// Colour is used only when out is a terminal standard output.
func RunWith(out, errOut io.Writer, procs ...runner.Procedure) int {
	reporter := output.NewConsoleReporter(
		output.WithWriter(out),
		output.WithErrorWriter(errOut),
		output.WithNoColor(out != io.Writer(os.Stdout) || color.NoColor),
	)
	return runner.NewRunner(nil, runner.WithReporter(reporter)).Run(procs...).Failed
}
