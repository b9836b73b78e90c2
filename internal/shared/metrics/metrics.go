package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	savesTotal         atomic.Uint64
	saveFailuresTotal  atomic.Uint64
	partialSavesTotal  atomic.Uint64
	repairsTotal       atomic.Uint64
	extractionFailures atomic.Uint64

	extractionDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncSave counts a completed save.
func IncSave() {
	savesTotal.Add(1)
}

// IncSaveFailed counts a save that wrote nothing.
func IncSaveFailed() {
	saveFailuresTotal.Add(1)
}

// IncPartialSave counts a save whose record was written without its file.
func IncPartialSave() {
	partialSavesTotal.Add(1)
}

// IncRepair counts a repaired file.
func IncRepair() {
	repairsTotal.Add(1)
}

// IncExtractionFailed counts a failed analysis extraction.
func IncExtractionFailed() {
	extractionFailures.Add(1)
}

// ObserveExtraction records an extraction duration.
func ObserveExtraction(d time.Duration) {
	ms := float64(d.Microseconds()) / 1000.0
	if ms < 0 {
		ms = 0
	}
	extractionDuration.Observe(ms)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resume_saves_total", "Resumes saved with their file", savesTotal.Load())
	writeCounter(&buf, "resume_save_failures_total", "Resume saves that wrote nothing", saveFailuresTotal.Load())
	writeCounter(&buf, "resume_partial_saves_total", "Resume saves missing their file", partialSavesTotal.Load())
	writeCounter(&buf, "resume_repairs_total", "Resume files written by repair", repairsTotal.Load())
	writeCounter(&buf, "resume_extraction_failures_total", "Failed analysis extractions", extractionFailures.Load())
	writeHistogram(&buf, "resume_extraction_duration_ms", "Analysis extraction duration in milliseconds", extractionDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
