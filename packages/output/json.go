package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/testy/packages/assertions"
	"github.com/abdul-hamid-achik/testy/packages/core/runner"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	ID       string      `json:"id"`
	Summary  JSONSummary `json:"summary"`
	Tests    []JSONTest  `json:"tests"`
	Duration float64     `json:"duration"` // milliseconds
	Timing   JSONTiming  `json:"timing"`
	Time     string      `json:"time"`
}

// JSONSummary represents the test summary
type JSONSummary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// JSONTiming holds duration percentiles in milliseconds
type JSONTiming struct {
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
	Max float64 `json:"max"`
}

// JSONTest represents a single test result
type JSONTest struct {
	Index      int     `json:"index"`
	Name       string  `json:"name"`
	Passed     bool    `json:"passed"`
	Skipped    bool    `json:"skipped,omitempty"`
	SkipReason string  `json:"skipReason,omitempty"`
	Duration   float64 `json:"duration"`
	Error      string  `json:"error,omitempty"`
	Assertion  bool    `json:"assertion,omitempty"` // the error is an assertion failure
}

// JSONReporter writes the whole report as one JSON document
type JSONReporter struct {
	writer io.Writer
	err    error
}

type JSONOption func(*JSONReporter)

func NewJSONReporter(opts ...JSONOption) *JSONReporter {
	r := &JSONReporter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(r *JSONReporter) {
		r.writer = w
	}
}

func (r *JSONReporter) ReportFailure(result *runner.Result) {
	// Failures are included in the final document
}

func (r *JSONReporter) ReportSummary(report *runner.Report) {
	out := JSONOutput{
		ID: report.ID,
		Summary: JSONSummary{
			Total:   report.Total,
			Passed:  report.Passed,
			Failed:  report.Failed,
			Skipped: report.Skipped,
		},
		Tests:    make([]JSONTest, 0, len(report.Results)),
		Duration: millis(report.Duration),
		Timing: JSONTiming{
			P50: millis(report.Timing.P50),
			P95: millis(report.Timing.P95),
			P99: millis(report.Timing.P99),
			Max: millis(report.Timing.Max),
		},
		Time: time.Now().Format(time.RFC3339),
	}

	for _, res := range report.Results {
		test := JSONTest{
			Index:    res.Index,
			Name:     res.Name,
			Passed:   res.Passed,
			Skipped:  res.Skipped,
			Duration: millis(res.Duration),
		}
		if res.SkipReason != "" {
			test.SkipReason = res.SkipReason
		}
		if res.Error != nil {
			test.Error = res.Error.Error()
			test.Assertion = assertions.IsFailure(res.Error)
		}
		out.Tests = append(out.Tests, test)
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	r.err = encoder.Encode(out)
}

// Err returns the error from writing the document, if any.
func (r *JSONReporter) Err() error {
	return r.err
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
