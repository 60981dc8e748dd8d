package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// StoreOperationsTotal counts CatalogStore calls by operation and outcome.
	StoreOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalogstore_operations_total",
			Help: "Total number of CatalogStore operations by kind and outcome",
		},
		[]string{"op", "outcome"},
	)

	// CommitDuration measures how long a CatalogStore operation took: the TxnMgr
	// scope (commit or roll back) for put, drop and clear, and the read
	// transaction for get.
	CommitDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalogstore_commit_duration_seconds",
			Help:    "Duration of a CatalogStore operation in seconds (TxnMgr scope for mutators, read transaction for get)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	// EntriesTotal is a gauge of catalog keys by prefix family. It is registered,
	// but nothing in this module sets it, so it stays at zero.
	EntriesTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalogstore_entries_total",
			Help: "Number of catalog entries currently stored, by key family",
		},
		[]string{"family"},
	)

	// HiddenConfigKeysSkipped counts configuration-blob keys written as null because
	// the global catalog marked them hidden.
	HiddenConfigKeysSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalogstore_configuration_hidden_keys_total",
			Help: "Total number of configuration keys suppressed as hidden during encoding",
		},
	)

	// UnknownConfigKeysSkipped counts configuration-blob keys with no GlobalCatalog
	// registration, both those written as null during encoding and those
	// skipped during load.
	UnknownConfigKeysSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalogstore_configuration_unknown_keys_total",
			Help: "Total number of unregistered configuration keys written as null on encode or skipped on load",
		},
	)
)

func init() {
	prometheus.MustRegister(StoreOperationsTotal)
	prometheus.MustRegister(CommitDuration)
	prometheus.MustRegister(EntriesTotal)
	prometheus.MustRegister(HiddenConfigKeysSkipped)
	prometheus.MustRegister(UnknownConfigKeysSkipped)
}

// Handler returns the Prometheus HTTP handler for /metrics scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the duration to a histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	duration := time.Since(t.start).Seconds()
	histogram.Observe(duration)
}

// ObserveDurationVec records the duration to a histogram vec with labels.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	duration := time.Since(t.start).Seconds()
	histogram.WithLabelValues(labels...).Observe(duration)
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
