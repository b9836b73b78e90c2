package metrics

import (
	"strings"
	"testing"
	"time"
)

func TestHistogramBucketsAreCumulativeOnce(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	var cumulative uint64
	for i := range snap.buckets {
		cumulative += snap.counts[i]
	}
	if cumulative != 2 {
		t.Fatalf("expected 2 observations inside buckets, got %d", cumulative)
	}
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
}

func TestRenderIncludesCounters(t *testing.T) {
	IncSave()
	IncPartialSave()
	ObserveExtraction(150 * time.Millisecond)

	out := Render()
	for _, want := range []string{
		"# TYPE resume_saves_total counter",
		"resume_partial_saves_total ",
		`resume_extraction_duration_ms_bucket{le="250"}`,
		"resume_extraction_duration_ms_count ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
