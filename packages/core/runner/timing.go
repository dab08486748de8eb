package runner

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// maxRecordable is the histogram ceiling in microseconds. Longer durations
// are clamped to it.
const maxRecordable = 60_000_000

// Timing summarizes how long the executed procedures took.
type Timing struct {
	P50 time.Duration
	P95 time.Duration
	P99 time.Duration
	Max time.Duration
}

func timingOf(results []*Result) Timing {
	// Histogram: 1us to 60s range, 3 significant digits
	h := hdrhistogram.New(1, maxRecordable, 3)

	recorded := 0
	for _, res := range results {
		if res == nil || res.Skipped {
			continue
		}
		us := res.Duration.Microseconds()
		if us < 1 {
			us = 1
		}
		if us > maxRecordable {
			us = maxRecordable
		}
		if err := h.RecordValue(us); err == nil {
			recorded++
		}
	}
	if recorded == 0 {
		return Timing{}
	}

	return Timing{
		P50: micros(h.ValueAtQuantile(50)),
		P95: micros(h.ValueAtQuantile(95)),
		P99: micros(h.ValueAtQuantile(99)),
		Max: micros(h.Max()),
	}
}

func micros(v int64) time.Duration {
	return time.Duration(v) * time.Microsecond
}
