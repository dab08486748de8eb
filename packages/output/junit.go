package output

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/testy/packages/assertions"
	"github.com/abdul-hamid-achik/testy/packages/core/runner"
)

// JUnit XML structures

// JUnitTestSuites is the root element
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr,omitempty"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Skipped    int              `xml:"skipped,attr"`
	Time       float64          `xml:"time,attr"`
	Timestamp  string           `xml:"timestamp,attr,omitempty"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite represents one run
type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	ID        string          `xml:"id,attr,omitempty"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Skipped   int             `xml:"skipped,attr"`
	Time      float64         `xml:"time,attr"`
	Timestamp string          `xml:"timestamp,attr,omitempty"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase represents a single test case
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Error     *JUnitError   `xml:"error,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

// JUnitFailure represents an assertion failure
type JUnitFailure struct {
	Message string `xml:"message,attr,omitempty"`
	Type    string `xml:"type,attr,omitempty"`
	Content string `xml:",chardata"`
}

// JUnitError represents any other error, including panics
type JUnitError struct {
	Message string `xml:"message,attr,omitempty"`
	Type    string `xml:"type,attr,omitempty"`
	Content string `xml:",chardata"`
}

// JUnitSkipped represents a skipped test
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// JUnitReporter formats reports as JUnit XML. Each report becomes one
// testsuite; Flush writes them all under a single testsuites element.
type JUnitReporter struct {
	writer io.Writer
	name   string
	suites []JUnitTestSuite
	err    error
}

type JUnitOption func(*JUnitReporter)

func NewJUnitReporter(opts ...JUnitOption) *JUnitReporter {
	r := &JUnitReporter{
		writer: os.Stdout,
		name:   "testy",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func JUnitWithWriter(w io.Writer) JUnitOption {
	return func(r *JUnitReporter) {
		r.writer = w
	}
}

// JUnitWithName sets the testsuites name attribute and the default suite name.
func JUnitWithName(name string) JUnitOption {
	return func(r *JUnitReporter) {
		r.name = name
	}
}

func (r *JUnitReporter) ReportFailure(result *runner.Result) {
	// Failures are included in individual test cases
}

func (r *JUnitReporter) ReportSummary(report *runner.Report) {
	name := report.Name
	if name == "" {
		name = r.name
	}

	suite := JUnitTestSuite{
		Name:      name,
		ID:        report.ID,
		Tests:     report.Total,
		Skipped:   report.Skipped,
		Time:      report.Duration.Seconds(),
		Timestamp: time.Now().Format(time.RFC3339),
		TestCases: make([]JUnitTestCase, 0, len(report.Results)),
	}

	for _, res := range report.Results {
		tc := JUnitTestCase{
			Name:      res.Name,
			ClassName: name,
			Time:      res.Duration.Seconds(),
		}

		switch {
		case res.Skipped:
			tc.Skipped = &JUnitSkipped{Message: res.SkipReason}
		case res.Passed:
		case assertions.IsFailure(res.Error):
			suite.Failures++
			tc.Failure = &JUnitFailure{
				Message: res.Error.Error(),
				Type:    "AssertionError",
				Content: fmt.Sprintf("%+v", res.Error),
			}
		default:
			suite.Errors++
			tc.Error = &JUnitError{
				Message: errorText(res.Error),
				Type:    "Error",
				Content: fmt.Sprintf("%+v", res.Error),
			}
		}

		suite.TestCases = append(suite.TestCases, tc)
	}

	r.suites = append(r.suites, suite)
}

// Flush writes the accumulated JUnit XML output
func (r *JUnitReporter) Flush() error {
	suites := JUnitTestSuites{
		Name:       r.name,
		Timestamp:  time.Now().Format(time.RFC3339),
		TestSuites: r.suites,
	}
	for _, suite := range r.suites {
		suites.Tests += suite.Tests
		suites.Failures += suite.Failures
		suites.Errors += suite.Errors
		suites.Skipped += suite.Skipped
		suites.Time += suite.Time
	}
	r.suites = nil

	if _, err := fmt.Fprintf(r.writer, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"); err != nil {
		r.err = err
		return err
	}
	encoder := xml.NewEncoder(r.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suites); err != nil {
		r.err = err
		return err
	}
	if _, err := fmt.Fprintln(r.writer); err != nil {
		r.err = err
	}
	return r.err
}

// Err returns the error from writing the document, if any.
func (r *JUnitReporter) Err() error {
	return r.err
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
