package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultConcurrency is the default number of procedures run at once in parallel mode
	DefaultConcurrency = 5
)

// Procedure is a single test. It passes by returning nil.
type Procedure func() error

// Case is a named procedure.
type Case struct {
	Name string
	Proc Procedure
}

// Reporter receives failures and the final summary of a run. Calls are never
// made concurrently.
type Reporter interface {
	ReportFailure(result *Result)
	ReportSummary(report *Report)
}

type Config struct {
	Parallel    bool
	Concurrency int
	// NameFilter selects cases by name. A leading or trailing '*' matches any
	// prefix or suffix. Cases that do not match are skipped.
	NameFilter string
	// Rate caps how many cases start per second. Zero means no limit.
	Rate float64
}

type Runner struct {
	config   *Config
	reporter Reporter
	logger   *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithReporter sets the reporter that receives failures and the summary.
func WithReporter(reporter Reporter) Option {
	return func(r *Runner) {
		if reporter != nil {
			r.reporter = reporter
		}
	}
}

// WithLogger sets the logger used for per-procedure diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRunner(cfg *Config, opts ...Option) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}

	r := &Runner{
		config:   cfg,
		reporter: nopReporter{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type Result struct {
	Index      int
	Name       string
	Passed     bool
	Skipped    bool
	SkipReason string
	Duration   time.Duration
	Error      error
}

// Failed reports whether the procedure ran and did not pass.
func (r *Result) Failed() bool {
	return !r.Passed && !r.Skipped
}

type Report struct {
	ID       string
	Name     string
	Total    int
	Passed   int
	Failed   int
	Skipped  int
	Results  []*Result
	Duration time.Duration
	Timing   Timing
}

// Succeeded reports whether no procedure failed.
func (r *Report) Succeeded() bool {
	return r.Failed == 0
}

// Failures returns the failed results in submission order.
func (r *Report) Failures() []*Result {
	var failures []*Result
	for _, res := range r.Results {
		if res.Failed() {
			failures = append(failures, res)
		}
	}
	return failures
}

// Run executes procs in order. Procedures are named "test #1", "test #2" and
// so on.
func (r *Runner) Run(procs ...Procedure) *Report {
	cases := make([]Case, len(procs))
	for i, proc := range procs {
		cases[i] = Case{Name: fmt.Sprintf("test #%d", i+1), Proc: proc}
	}
	return r.RunCases(cases)
}

// RunCases executes every case and returns the report. Running the same cases
// twice yields the same counts.
func (r *Runner) RunCases(cases []Case) *Report {
	return r.RunSuite("", cases)
}

// RunSuite is RunCases with the report labelled name.
func (r *Runner) RunSuite(name string, cases []Case) *Report {
	start := time.Now()
	report := &Report{
		ID:      uuid.NewString(),
		Name:    name,
		Total:   len(cases),
		Results: make([]*Result, len(cases)),
	}

	r.logger.Debug("starting run",
		zap.String("run_id", report.ID),
		zap.String("suite", name),
		zap.Int("cases", len(cases)),
		zap.Bool("parallel", r.config.Parallel))

	// Filter cases first
	var runnable []int
	for i, c := range cases {
		if !matchesPattern(c.Name, r.config.NameFilter) {
			report.Results[i] = &Result{
				Index:      i,
				Name:       c.Name,
				Skipped:    true,
				SkipReason: "filtered out",
			}
			continue
		}
		runnable = append(runnable, i)
	}

	var limiter *rate.Limiter
	if r.config.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.config.Rate), 1)
	}

	if r.config.Parallel && len(runnable) > 1 {
		r.runParallel(cases, runnable, report.Results, limiter)
		for _, i := range runnable {
			if report.Results[i].Failed() {
				r.reporter.ReportFailure(report.Results[i])
			}
		}
	} else {
		for _, i := range runnable {
			wait(limiter)
			res := r.runCase(i, cases[i])
			report.Results[i] = res
			if res.Failed() {
				r.reporter.ReportFailure(res)
			}
		}
	}

	for _, res := range report.Results {
		switch {
		case res.Skipped:
			report.Skipped++
		case res.Passed:
			report.Passed++
		default:
			report.Failed++
		}
	}
	report.Duration = time.Since(start)
	report.Timing = timingOf(report.Results)

	r.logger.Debug("run finished",
		zap.String("run_id", report.ID),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
		zap.Int("skipped", report.Skipped),
		zap.Duration("duration", report.Duration))

	r.reporter.ReportSummary(report)
	return report
}

func (r *Runner) runParallel(cases []Case, indices []int, results []*Result, limiter *rate.Limiter) {
	concurrency := r.config.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for _, idx := range indices {
		wg.Add(1)
		sem <- struct{}{} // acquire semaphore
		wait(limiter)

		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }() // release semaphore

			results[i] = r.runCase(i, cases[i])
		}(idx)
	}

	wg.Wait()
}

func wait(limiter *rate.Limiter) {
	if limiter != nil {
		// Wait only fails on cancellation, which a background context never sees.
		_ = limiter.Wait(context.Background())
	}
}

// runCase runs one procedure, turning a panic into a failure.
func (r *Runner) runCase(index int, c Case) (result *Result) {
	result = &Result{Index: index, Name: c.Name}
	r.logger.Debug("running test", zap.Int("index", index), zap.String("name", c.Name))

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			result.Error = panicError(p)
		}
		result.Duration = time.Since(start)
		result.Passed = result.Error == nil

		if result.Passed {
			r.logger.Debug("test passed", zap.String("name", c.Name), zap.Duration("duration", result.Duration))
			return
		}
		r.logger.Info("test failed", zap.String("name", c.Name), zap.Error(result.Error))
	}()

	if c.Proc == nil {
		result.Error = errors.New("nil test procedure")
		return result
	}
	result.Error = c.Proc()
	return result
}

func panicError(p any) error {
	if err, ok := p.(error); ok {
		return errors.Wrap(err, "test panicked")
	}
	return errors.Errorf("test panicked: %v", p)
}

func matchesPattern(name, pattern string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}

	if pattern[0] == '*' && pattern[len(pattern)-1] == '*' {
		return strings.Contains(name, pattern[1:len(pattern)-1])
	}

	if pattern[0] == '*' {
		return strings.HasSuffix(name, pattern[1:])
	}

	if pattern[len(pattern)-1] == '*' {
		return strings.HasPrefix(name, pattern[:len(pattern)-1])
	}

	return name == pattern
}

type nopReporter struct{}

func (nopReporter) ReportFailure(*Result) {}
func (nopReporter) ReportSummary(*Report) {}
