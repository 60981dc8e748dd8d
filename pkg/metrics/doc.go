/*
Package metrics provides Prometheus metrics collection and exposition for the
catalog store.

The metrics package defines and registers all catalog-store metrics using the
Prometheus client library, providing observability into store operation
counts and latency; the entry-count gauge is registered but never updated.
Metrics are exposed via an
HTTP handler for scraping by a Prometheus server.

# Architecture

	┌──────────────────── METRICS SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │          Prometheus Registry                │          │
	│  │  - Global DefaultRegistry                   │          │
	│  │  - MustRegister at package init             │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │              Metric Types                   │          │
	│  │                                              │          │
	│  │  Counter: operations total, hidden/unknown  │          │
	│  │           configuration keys skipped        │          │
	│  │  Gauge: entries total (registered, not set) │          │
	│  │  Histogram: commit duration                 │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │          HTTP Metrics Endpoint              │          │
	│  │  - Format: Prometheus text exposition       │          │
	│  │  - Handler: promhttp.Handler()              │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Timer Helper

Timer is a small stopwatch used by CatalogStore to observe commit duration
without threading time.Time values through every call site:

	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.CommitDuration, "put")
*/
package metrics
