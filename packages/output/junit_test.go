package output

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJUnitReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewJUnitReporter(JUnitWithWriter(&buf), JUnitWithName("selfcheck"))
	deliver(r, sampleReport())
	require.NoError(t, r.Flush())

	out := buf.String()
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))

	var suites JUnitTestSuites
	require.NoError(t, xml.Unmarshal([]byte(out), &suites))

	assert.Equal(t, "selfcheck", suites.Name)
	assert.Equal(t, 4, suites.Tests)
	assert.Equal(t, 1, suites.Failures)
	assert.Equal(t, 1, suites.Errors)
	assert.Equal(t, 1, suites.Skipped)

	require.Len(t, suites.TestSuites, 1)
	assert.Equal(t, "selfcheck", suites.TestSuites[0].Name)
	cases := suites.TestSuites[0].TestCases
	require.Len(t, cases, 4)

	assert.Nil(t, cases[0].Failure)
	assert.Nil(t, cases[0].Error)

	require.NotNil(t, cases[1].Failure)
	assert.Equal(t, "AssertionError", cases[1].Failure.Type)
	assert.Contains(t, cases[1].Failure.Content, "expected:  2")

	require.NotNil(t, cases[2].Error)
	assert.Equal(t, "test panicked: boom", cases[2].Error.Message)

	require.NotNil(t, cases[3].Skipped)
	assert.Equal(t, "filtered out", cases[3].Skipped.Message)
}

func TestJUnitReporter_SeveralReports(t *testing.T) {
	var buf bytes.Buffer
	r := NewJUnitReporter(JUnitWithWriter(&buf))

	first := sampleReport()
	first.Name = "failing"
	second := sampleReport()
	second.Name = "passing"
	r.ReportSummary(first)
	r.ReportSummary(second)
	require.NoError(t, r.Flush())

	var suites JUnitTestSuites
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &suites))
	assert.Equal(t, "testy", suites.Name)
	assert.Equal(t, 8, suites.Tests)
	assert.Equal(t, 2, suites.Failures)
	require.Len(t, suites.TestSuites, 2)
	assert.Equal(t, "failing", suites.TestSuites[0].Name)
	assert.Equal(t, "passing", suites.TestSuites[1].Name)
	assert.Equal(t, "passing", suites.TestSuites[1].TestCases[0].ClassName)
}
