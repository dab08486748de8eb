package output

import (
	"errors"
	"time"

	"github.com/abdul-hamid-achik/testy/packages/assertions"
	"github.com/abdul-hamid-achik/testy/packages/core/runner"
)

// sampleReport has one pass, one assertion failure, one panic-style error and
// one skipped case.
func sampleReport() *runner.Report {
	results := []*runner.Result{
		{Index: 0, Name: "test #1", Passed: true, Duration: 2 * time.Millisecond},
		{Index: 1, Name: "test #2", Error: assertions.Equals(2, 3, "msg"), Duration: time.Millisecond},
		{Index: 2, Name: "test #3", Error: errors.New("test panicked: boom"), Duration: time.Millisecond},
		{Index: 3, Name: "other", Skipped: true, SkipReason: "filtered out"},
	}
	return &runner.Report{
		ID:       "5f0c6a5e-0000-4000-8000-000000000000",
		Total:    4,
		Passed:   1,
		Failed:   2,
		Skipped:  1,
		Results:  results,
		Duration: 5 * time.Millisecond,
		Timing: runner.Timing{
			P50: time.Millisecond,
			P95: 2 * time.Millisecond,
			P99: 2 * time.Millisecond,
			Max: 2 * time.Millisecond,
		},
	}
}

func deliver(r runner.Reporter, report *runner.Report) {
	for _, res := range report.Failures() {
		r.ReportFailure(res)
	}
	r.ReportSummary(report)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
