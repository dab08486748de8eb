package selfcheck

import (
	"errors"
	"testing"

	"github.com/abdul-hamid-achik/testy/packages/assertions"
	"github.com/abdul-hamid-achik/testy/packages/core/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuites_FailAsExpected(t *testing.T) {
	for _, s := range Suites() {
		t.Run(s.Name, func(t *testing.T) {
			report := runner.NewRunner(nil).RunCases(s.Cases)
			assert.Equal(t, s.Expected, report.Failed)
			assert.Equal(t, len(s.Cases), report.Total)
		})
	}
}

func TestFailingSuite(t *testing.T) {
	suites, err := Lookup("failing")
	require.NoError(t, err)
	require.Len(t, suites, 1)

	report := runner.NewRunner(nil).RunCases(suites[0].Cases)
	require.Equal(t, 50, report.Total)

	for _, res := range report.Failures() {
		assert.True(t, assertions.IsFailure(res.Error), "%s: %v", res.Name, res.Error)
	}

	byName := map[string]string{}
	for _, res := range report.Results {
		byName[res.Name] = res.Error.Error()
	}
	assert.Equal(t, "Fail 1", byName["fail"])
	assert.Equal(t, "assertEquals : \nexpected:  two\nactual:    one", byName["assertEquals"])
	assert.Equal(t, "assertNull : expected null, got not null", byName["assertNull"])
	assert.Equal(t, "assertEquals byte[] : \nexpected:  [1, 1]\nactual:    [1, 0]", byName["assertEquals byte[]"])
	// the last case carries no message
	assert.Equal(t, "expected:  [[1, 2]]\nactual:    [[3, 4]]", byName["assertEquals int[][]"])
}

func TestSuites_Parallel(t *testing.T) {
	r := runner.NewRunner(&runner.Config{Parallel: true, Concurrency: 8})
	verdicts, err := Run(r, Suites(), nil)
	require.NoError(t, err)
	require.Len(t, verdicts, len(Names))
	for _, v := range verdicts {
		assert.True(t, v.OK(), v.String())
	}
}

func TestRun_Each(t *testing.T) {
	var seen []string
	verdicts, err := Run(runner.NewRunner(nil), Suites(), func(v Verdict) error {
		seen = append(seen, v.Suite.Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, Names, seen)
	assert.Len(t, verdicts, len(Names))

	stop := errors.New("stop")
	seen = nil
	verdicts, err = Run(runner.NewRunner(nil), Suites(), func(v Verdict) error {
		seen = append(seen, v.Suite.Name)
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, Names[:1], seen)
	assert.Len(t, verdicts, 1)
}

func TestLookup(t *testing.T) {
	all, err := Lookup("all")
	require.NoError(t, err)
	assert.Len(t, all, len(Names))

	all, err = Lookup("")
	require.NoError(t, err)
	assert.Len(t, all, len(Names))

	for i, s := range all {
		assert.Equal(t, Names[i], s.Name)
	}

	_, err = Lookup("slow")
	assert.ErrorContains(t, err, "unknown suite")
}

func TestVerdict(t *testing.T) {
	v := Verdict{Suite: Suite{Expected: 50}, Report: &runner.Report{Failed: 49}}
	assert.False(t, v.OK())
	assert.Equal(t, "Expected 50 failures.  Got:  49", v.String())
}

func TestOutcomes(t *testing.T) {
	r := runner.NewRunner(&runner.Config{NameFilter: "keep*"})
	report := r.RunCases([]runner.Case{
		{Name: "keep pass", Proc: func() error { return nil }},
		{Name: "keep fail", Proc: func() error { return assertions.Equals(1, 2, "numbers") }},
		{Name: "drop", Proc: func() error { return nil }},
	})

	outcomes := Outcomes(report)
	require.Len(t, outcomes, 3)
	assert.Equal(t, Outcome{Name: "keep pass", Status: "pass"}, outcomes[0])
	assert.Equal(t, Outcome{Name: "keep fail", Status: "fail", Message: "numbers : "}, outcomes[1])
	assert.Equal(t, Outcome{Name: "drop", Status: "skip"}, outcomes[2])
}

func TestOutcomes_Stable(t *testing.T) {
	for _, s := range Suites() {
		first := Outcomes(runner.NewRunner(nil).RunCases(s.Cases))
		second := Outcomes(runner.NewRunner(&runner.Config{Parallel: true}).RunCases(s.Cases))
		assert.Equal(t, first, second, s.Name)
	}
}
