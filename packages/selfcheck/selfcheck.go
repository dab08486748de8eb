// Package selfcheck holds suites that exercise the assertion library and the
// runner against each other. Each suite knows how many of its cases should
// fail, so a run doubles as a check of the framework itself.
package selfcheck

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/testy/packages/core/runner"
)

// Suite is a named list of cases with the number expected to fail.
type Suite struct {
	Name     string
	Expected int
	Cases    []runner.Case
}

// Names lists the suites in the order "all" runs them.
var Names = []string{"failing", "messageless", "passing", "example"}

// Suites returns every suite.
func Suites() []Suite {
	return []Suite{
		{Name: "failing", Expected: 50, Cases: failingCases()},
		{Name: "messageless", Expected: 0, Cases: messagelessCases()},
		{Name: "passing", Expected: 0, Cases: passingCases()},
		{Name: "example", Expected: 2, Cases: exampleCases()},
	}
}

// Lookup returns the suite called name, or every suite for "all" or "".
func Lookup(name string) ([]Suite, error) {
	if name == "" || name == "all" {
		return Suites(), nil
	}
	for _, s := range Suites() {
		if s.Name == name {
			return []Suite{s}, nil
		}
	}
	return nil, fmt.Errorf("unknown suite %q (want all, %s)", name, strings.Join(Names, ", "))
}

// Verdict is the outcome of one suite run.
type Verdict struct {
	Suite  Suite
	Report *runner.Report
}

// OK reports whether the suite failed exactly as often as expected.
func (v Verdict) OK() bool {
	return v.Report.Failed == v.Suite.Expected
}

func (v Verdict) String() string {
	return fmt.Sprintf("Expected %d failures.  Got:  %d", v.Suite.Expected, v.Report.Failed)
}

// Run executes each suite with r and hands every verdict to each as soon as
// its suite finishes. It stops at the first error each returns. A nil each
// only collects the verdicts.
func Run(r *runner.Runner, suites []Suite, each func(Verdict) error) ([]Verdict, error) {
	verdicts := make([]Verdict, 0, len(suites))
	for _, s := range suites {
		v := Verdict{Suite: s, Report: r.RunSuite(s.Name, s.Cases)}
		verdicts = append(verdicts, v)
		if each != nil {
			if err := each(v); err != nil {
				return verdicts, err
			}
		}
	}
	return verdicts, nil
}

// Outcome is how one case of a suite ended, in a form stable enough to
// snapshot between runs.
type Outcome struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Outcomes lists the outcome of every case of report in submission order.
// Only the first line of a failure message is kept.
func Outcomes(report *runner.Report) []Outcome {
	outcomes := make([]Outcome, 0, len(report.Results))
	for _, res := range report.Results {
		o := Outcome{Name: res.Name, Status: "pass"}
		switch {
		case res.Skipped:
			o.Status = "skip"
		case res.Failed():
			o.Status = "fail"
			if res.Error != nil {
				o.Message, _, _ = strings.Cut(res.Error.Error(), "\n")
			}
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}

func named(name string, proc runner.Procedure) runner.Case {
	return runner.Case{Name: name, Proc: proc}
}
