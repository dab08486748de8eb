package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(JSONWithWriter(&buf))
	deliver(r, sampleReport())
	require.NoError(t, r.Err())

	doc := buf.String()
	require.True(t, gjson.Valid(doc))

	assert.Equal(t, "5f0c6a5e-0000-4000-8000-000000000000", gjson.Get(doc, "id").String())
	assert.Equal(t, int64(4), gjson.Get(doc, "summary.total").Int())
	assert.Equal(t, int64(2), gjson.Get(doc, "summary.failed").Int())
	assert.Equal(t, int64(1), gjson.Get(doc, "summary.skipped").Int())
	assert.Equal(t, 5.0, gjson.Get(doc, "duration").Float())
	assert.Equal(t, 2.0, gjson.Get(doc, "timing.max").Float())

	tests := gjson.Get(doc, "tests").Array()
	require.Len(t, tests, 4)
	assert.True(t, tests[0].Get("passed").Bool())
	assert.False(t, tests[0].Get("error").Exists())

	assert.Equal(t, "msg : \nexpected:  2\nactual:    3", tests[1].Get("error").String())
	assert.True(t, tests[1].Get("assertion").Bool())

	assert.Equal(t, "test panicked: boom", tests[2].Get("error").String())
	assert.False(t, tests[2].Get("assertion").Exists())

	assert.True(t, tests[3].Get("skipped").Bool())
	assert.Equal(t, "filtered out", tests[3].Get("skipReason").String())
	assert.Equal(t, []string{"test #1", "test #2", "test #3", "other"}, namesOf(gjson.Get(doc, "tests.#.name")))
}

func namesOf(r gjson.Result) []string {
	var names []string
	for _, v := range r.Array() {
		names = append(names, v.String())
	}
	return names
}

func TestJSONReporter_WriteError(t *testing.T) {
	r := NewJSONReporter(JSONWithWriter(failingWriter{}))
	r.ReportSummary(sampleReport())
	assert.Error(t, r.Err())
}
