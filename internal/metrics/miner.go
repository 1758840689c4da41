// Package metrics holds the Prometheus collectors of the miner process.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nimblecoin"

var (
	minerTemplatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "templates_total",
		Help:      "Count of block templates built.",
	}, []string{"network", "instance", "status", "empty"})

	minerTemplateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "template_duration_seconds",
		Help:      "Duration of building a block template.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "instance", "status"})

	minerTemplateTxs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "template_transactions",
		Help:      "Number of non-coinbase transactions per template.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
	}, []string{"network", "instance"})

	minerSearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "searches_total",
		Help:      "Count of nonce searches by outcome.",
	}, []string{"network", "instance", "outcome"})

	minerSearchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "search_duration_seconds",
		Help:      "Duration of a nonce search.",
		Buckets:   []float64{.001, .01, .1, .5, 1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"network", "instance", "outcome"})

	minerHashesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "hashes_total",
		Help:      "Count of header hashes computed.",
	}, []string{"network", "instance"})

	minerSubmitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "submits_total",
		Help:      "Count of solved blocks submitted to the chain.",
	}, []string{"network", "instance", "status"})

	minerSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "submit_duration_seconds",
		Help:      "Duration of validating and appending a solved block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "instance", "status"})

	minerChainEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "chain_events_total",
		Help:      "Count of chain notifications seen by a miner.",
	}, []string{"network", "instance", "kind", "origin"})
)

// Miner tracks metrics of one mining controller.
type Miner struct {
	network  string
	instance string
}

// NewMiner constructs a Miner collector for the given controller instance.
func NewMiner(network string, instance int) *Miner {
	return &Miner{network: orUnknown(network), instance: strconv.Itoa(instance)}
}

// ObserveTemplate records a template build.
func (m Miner) ObserveTemplate(err error, empty bool, txs int, started time.Time) {
	status := statusLabel(err)
	minerTemplatesTotal.WithLabelValues(m.network, m.instance, status, strconv.FormatBool(empty)).Inc()
	minerTemplateDuration.WithLabelValues(m.network, m.instance, status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		minerTemplateTxs.WithLabelValues(m.network, m.instance).Observe(float64(txs))
	}
}

// ObserveSearch records the outcome of a nonce search.
func (m Miner) ObserveSearch(outcome string, hashes uint64, started time.Time) {
	minerSearchesTotal.WithLabelValues(m.network, m.instance, outcome).Inc()
	minerSearchDuration.WithLabelValues(m.network, m.instance, outcome).
		Observe(time.Since(started).Seconds())
	minerHashesTotal.WithLabelValues(m.network, m.instance).Add(float64(hashes))
}

// ObserveSubmit records a block submission.
func (m Miner) ObserveSubmit(err error, started time.Time) {
	status := statusLabel(err)
	minerSubmitsTotal.WithLabelValues(m.network, m.instance, status).Inc()
	minerSubmitDuration.WithLabelValues(m.network, m.instance, status).
		Observe(time.Since(started).Seconds())
}

// ObserveChainEvent records a chain notification and whether it came from another miner.
func (m Miner) ObserveChainEvent(kind string, foreign bool) {
	origin := "own"
	if foreign {
		origin = "foreign"
	}
	minerChainEventsTotal.WithLabelValues(m.network, m.instance, kind, origin).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
