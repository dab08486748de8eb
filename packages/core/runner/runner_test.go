package runner

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/testy/packages/assertions"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingReporter struct {
	failures  []string
	summaries []*Report
}

func (r *recordingReporter) ReportFailure(result *Result) {
	r.failures = append(r.failures, result.Name)
}

func (r *recordingReporter) ReportSummary(report *Report) {
	r.summaries = append(r.summaries, report)
}

func pass() error { return nil }

func fail() error { return errors.New("boom") }

func TestNewRunner(t *testing.T) {
	t.Run("with nil config", func(t *testing.T) {
		r := NewRunner(nil)
		require.NotNil(t, r)
		assert.NotNil(t, r.config)
		assert.NotNil(t, r.reporter)
		assert.NotNil(t, r.logger)
	})

	t.Run("nil options are ignored", func(t *testing.T) {
		r := NewRunner(&Config{Concurrency: 3}, WithReporter(nil), WithLogger(nil))
		assert.Equal(t, 3, r.config.Concurrency)
		assert.IsType(t, nopReporter{}, r.reporter)
	})
}

func TestRunner_Run(t *testing.T) {
	rep := &recordingReporter{}
	r := NewRunner(nil, WithReporter(rep))

	report := r.Run(pass, fail, pass, fail)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 0, report.Skipped)
	assert.False(t, report.Succeeded())
	assert.Equal(t, []string{"test #2", "test #4"}, rep.failures)
	require.Len(t, rep.summaries, 1)
	assert.Same(t, report, rep.summaries[0])

	_, err := uuid.Parse(report.ID)
	assert.NoError(t, err)
}

func TestRunner_Isolation(t *testing.T) {
	tests := []struct {
		name       string
		procs      []Procedure
		wantFailed int
	}{
		{"empty", nil, 0},
		{"all pass", []Procedure{pass, pass}, 0},
		{"first fails", []Procedure{fail, pass, pass}, 1},
		{"last fails", []Procedure{pass, pass, fail}, 1},
		{"panic string", []Procedure{func() error { panic("bad") }, pass}, 1},
		{"panic error", []Procedure{pass, func() error { panic(errors.New("bad")) }}, 1},
		{"nil dereference", []Procedure{func() error {
			var p *int
			_ = *p
			return nil
		}, pass}, 1},
		{"nil procedure", []Procedure{nil, pass}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewRunner(nil).Run(tt.procs...)
			assert.Equal(t, len(tt.procs), report.Total)
			assert.Equal(t, tt.wantFailed, report.Failed)
			assert.Equal(t, len(tt.procs)-tt.wantFailed, report.Passed)
		})
	}
}

func TestRunner_SelfReferencingValues(t *testing.T) {
	s := make([]any, 1)
	s[0] = s
	nested := []any{1, s}

	report := NewRunner(nil).Run(
		func() error { return assertions.Equals(s, s) },
		func() error { return assertions.Equals(nested, []any{1, 2}) },
		pass,
	)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 2, report.Passed)
	require.Len(t, report.Failures(), 1)
	assert.Contains(t, report.Failures()[0].Error.Error(), "[1, [[...]]]")
}

func TestRunner_AllProceduresRun(t *testing.T) {
	var ran atomic.Int32
	count := func(err error) Procedure {
		return func() error {
			ran.Add(1)
			return err
		}
	}

	report := NewRunner(nil).Run(count(errors.New("x")), func() error {
		ran.Add(1)
		panic("y")
	}, count(nil))

	assert.Equal(t, int32(3), ran.Load())
	assert.Equal(t, 2, report.Failed)
}

func TestRunner_PanicError(t *testing.T) {
	report := NewRunner(nil).Run(func() error { panic("kaboom") })
	require.Len(t, report.Failures(), 1)

	err := report.Failures()[0].Error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test panicked: kaboom")
}

func TestRunner_Idempotent(t *testing.T) {
	r := NewRunner(nil)
	procs := []Procedure{pass, fail, fail, pass, pass}

	first := r.Run(procs...)
	second := r.Run(procs...)

	assert.Equal(t, first.Failed, second.Failed)
	assert.Equal(t, first.Passed, second.Passed)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRunner_Parallel(t *testing.T) {
	var procs []Procedure
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			procs = append(procs, fail)
		} else {
			procs = append(procs, func() error {
				time.Sleep(time.Millisecond)
				return nil
			})
		}
	}

	seqRep := &recordingReporter{}
	seq := NewRunner(nil, WithReporter(seqRep)).Run(procs...)

	parRep := &recordingReporter{}
	par := NewRunner(&Config{Parallel: true, Concurrency: 4}, WithReporter(parRep)).Run(procs...)

	assert.Equal(t, seq.Failed, par.Failed)
	assert.Equal(t, seq.Passed, par.Passed)
	assert.Equal(t, seqRep.failures, parRep.failures)
	assert.Equal(t, 7, par.Failed)
}

func TestRunner_ParallelRespectsConcurrency(t *testing.T) {
	var active, peak atomic.Int32
	proc := func() error {
		n := active.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		return nil
	}

	procs := make([]Procedure, 12)
	for i := range procs {
		procs[i] = proc
	}

	report := NewRunner(&Config{Parallel: true, Concurrency: 3}).Run(procs...)
	assert.Equal(t, 12, report.Passed)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestRunner_NameFilter(t *testing.T) {
	rep := &recordingReporter{}
	r := NewRunner(&Config{NameFilter: "math*"}, WithReporter(rep))

	report := r.RunCases([]Case{
		{Name: "math add", Proc: pass},
		{Name: "math div", Proc: fail},
		{Name: "strings", Proc: fail},
	})

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, []string{"math div"}, rep.failures)

	skipped := report.Results[2]
	assert.True(t, skipped.Skipped)
	assert.False(t, skipped.Failed())
	assert.Equal(t, "filtered out", skipped.SkipReason)
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"test #1", "", true},
		{"test #1", "*", true},
		{"test #1", "test #1", true},
		{"test #1", "test #2", false},
		{"test #12", "test #1*", true},
		{"fail 3", "*3", true},
		{"fail 3", "*4", false},
		{"assert equals double", "*equals*", true},
		{"assert same", "*equals*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesPattern(tt.name, tt.pattern))
		})
	}
}

func TestRunner_Timing(t *testing.T) {
	report := NewRunner(nil).Run(func() error {
		time.Sleep(2 * time.Millisecond)
		return nil
	}, pass)

	assert.GreaterOrEqual(t, report.Timing.Max, 2*time.Millisecond)
	assert.LessOrEqual(t, report.Timing.P50, report.Timing.Max)
	assert.Greater(t, report.Duration, time.Duration(0))

	empty := NewRunner(nil).Run()
	assert.Equal(t, Timing{}, empty.Timing)
	assert.True(t, empty.Succeeded())
}

func TestRunner_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRunner(nil, WithLogger(zap.New(core)))

	r.Run(pass, fail)

	failed := logs.FilterMessage("test failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.InfoLevel, failed[0].Level)
	assert.Equal(t, "test #2", failed[0].ContextMap()["name"])

	assert.Equal(t, 2, logs.FilterMessage("running test").Len())
	assert.True(t, strings.HasPrefix(logs.All()[0].Message, "starting"))
}

func TestRunner_RunSuite(t *testing.T) {
	rep := &recordingReporter{}
	report := NewRunner(nil, WithReporter(rep)).RunSuite("smoke", []Case{{Name: "a", Proc: pass}})

	assert.Equal(t, "smoke", report.Name)
	assert.Equal(t, 1, report.Passed)
	require.Len(t, rep.summaries, 1)
	assert.Equal(t, "smoke", rep.summaries[0].Name)
}

func TestRunner_Rate(t *testing.T) {
	var calls atomic.Int32
	proc := func() error {
		calls.Add(1)
		return nil
	}

	for _, parallel := range []bool{false, true} {
		calls.Store(0)
		r := NewRunner(&Config{Rate: 20, Parallel: parallel})

		start := time.Now()
		report := r.Run(proc, proc, proc, proc, proc)
		elapsed := time.Since(start)

		assert.Equal(t, 5, report.Passed)
		assert.Equal(t, int32(5), calls.Load())
		// The first case starts at once, the other four wait 50ms each.
		assert.GreaterOrEqual(t, elapsed, 150*time.Millisecond, "parallel=%v", parallel)
	}
}
