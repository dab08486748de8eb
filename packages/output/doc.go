// Package output provides reporters that turn runner results into text.
//
// Supported output formats:
//   - Console: failures on the error stream, a plain summary on the output stream
//   - JSON: one JSON document per report
//   - JUnit: JUnit XML format for CI integration
//   - TAP: Test Anything Protocol format
//
// Every reporter implements runner.Reporter. Console and JSON write as reports
// arrive. TAP and JUnit accumulate reports and implement Flusher; nothing is
// written until Flush is called.
package output
