package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recorderFlushesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "recorder",
		Name:      "flushes_total",
		Help:      "Count of mined block batches written to storage.",
	}, []string{"network", "status"})
	recorderFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "recorder",
		Name:      "flush_duration_seconds",
		Help:      "Duration of writing a mined block batch.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"network", "status"})
	recorderBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "recorder",
		Name:      "blocks_total",
		Help:      "Count of mined blocks by recording result.",
	}, []string{"network", "result"})
)

// Recorder tracks the mined block recorder.
type Recorder struct {
	network string
}

// NewRecorder constructs a Recorder metrics collector.
func NewRecorder(network string) *Recorder {
	return &Recorder{network: orUnknown(network)}
}

// ObserveFlush records one batch write.
func (m Recorder) ObserveFlush(items int, err error, started time.Time) {
	status := statusLabel(err)
	recorderFlushesTotal.WithLabelValues(m.network, status).Inc()
	recorderFlushDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())

	result := "stored"
	if err != nil {
		result = "failed"
	}
	recorderBlocksTotal.WithLabelValues(m.network, result).Add(float64(items))
}

// ObserveDropped counts a block that did not fit into the queue.
func (m Recorder) ObserveDropped() {
	recorderBlocksTotal.WithLabelValues(m.network, "dropped").Inc()
}
