// Package runner executes an ordered list of test procedures and reports
// the outcome of each one.
//
// A procedure signals failure by returning a non-nil error or by panicking.
// Every procedure runs regardless of how the others behave, and failures are
// handed to a Reporter as they occur (sequential mode) or in submission order
// once all procedures have finished (parallel mode).
//
// The report returned by Run carries totals, per-procedure results and a
// latency summary built from an HDR histogram.
package runner
