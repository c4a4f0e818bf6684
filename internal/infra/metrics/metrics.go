package metrics

import (
	"net/http"
	"strconv"
	"time"

	"bookcase-rental/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bookcase"

// Registry owns every collector the service exposes on /metrics.
type Registry struct {
	reg *prometheus.Registry

	runs          prometheus.Counter
	ownerFailures prometheus.Counter
	evictions     prometheus.Counter
	suspensions   prometheus.Counter
	offsets       prometheus.Counter
	offsetAmount  prometheus.Counter
	runDuration   prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "reconciliation", Name: "runs_total",
			Help: "Completed overdue reconciliation runs.",
		}),
		ownerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "reconciliation", Name: "owner_failures_total",
			Help: "Owners whose reconciliation failed and was skipped.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "reconciliation", Name: "evictions_total",
			Help: "Suspended occupancies evicted.",
		}),
		suspensions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "reconciliation", Name: "suspensions_total",
			Help: "Occupancies suspended after the deposit ran out.",
		}),
		offsets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "reconciliation", Name: "offsets_total",
			Help: "Deposit offsets written.",
		}),
		offsetAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "reconciliation", Name: "offset_amount_total",
			Help: "Sum of deposit offsets in minor currency units.",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "reconciliation", Name: "run_duration_seconds",
			Help:    "Wall time of a reconciliation run.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.runs, r.ownerFailures, r.evictions, r.suspensions, r.offsets, r.offsetAmount, r.runDuration,
		r.httpRequests, r.httpLatency,
	)
	return r
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer is exposed for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

func (r *Registry) RecordRun(report commands.ReconciliationReport) {
	r.runs.Inc()
	r.evictions.Add(float64(report.Evictions))
	r.suspensions.Add(float64(report.Suspensions))
	r.offsets.Add(float64(report.Offsets))
	r.offsetAmount.Add(float64(report.OffsetTotal))
	r.runDuration.Observe(report.Duration.Seconds())
}

func (r *Registry) RecordOwnerFailure() {
	r.ownerFailures.Inc()
}

func (r *Registry) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
