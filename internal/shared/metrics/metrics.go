// Package metrics exposes process counters in Prometheus text format.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	optimizationStartedTotal   atomic.Uint64
	optimizationCompletedTotal atomic.Uint64
	optimizationFailedTotal    atomic.Uint64
	providerFailoverTotal      atomic.Uint64

	providerCallDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncOptimizationStarted increments the started counter.
func IncOptimizationStarted() {
	optimizationStartedTotal.Add(1)
}

// IncOptimizationCompleted increments the completed counter.
func IncOptimizationCompleted() {
	optimizationCompletedTotal.Add(1)
}

// IncOptimizationFailed increments the failed counter.
func IncOptimizationFailed() {
	optimizationFailedTotal.Add(1)
}

// IncProviderFailover counts failover hops to a secondary provider.
func IncProviderFailover() {
	providerFailoverTotal.Add(1)
}

// ObserveProviderCallMs records a provider call duration in milliseconds.
func ObserveProviderCallMs(value float64) {
	if value < 0 {
		value = 0
	}
	providerCallDuration.Observe(value)
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
	writeCounter(&buf, "optimization_started_total", "Total optimizations started", optimizationStartedTotal.Load())
	writeCounter(&buf, "optimization_completed_total", "Total optimizations completed", optimizationCompletedTotal.Load())
	writeCounter(&buf, "optimization_failed_total", "Total optimizations failed", optimizationFailedTotal.Load())
	writeCounter(&buf, "provider_failover_total", "Total provider failover hops", providerFailoverTotal.Load())
	writeHistogram(&buf, "provider_call_duration_ms", "Provider call duration in milliseconds", providerCallDuration.Snapshot())
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
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	for i, bound := range snap.buckets {
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, strconv.FormatFloat(bound, 'f', -1, 64), snap.counts[i])
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %g\n", name, snap.sum)
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}
