// Package metrics exposes Prometheus instrumentation for the RPC services
// and the projection engine.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
	projections prometheus.Counter
	years       prometheus.Histogram
	tasks       prometheus.Gauge
}

// New creates a Metrics with its own registry, including Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "investcalc",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "investcalc",
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		projections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "investcalc",
			Name:      "projections_total",
			Help:      "Projections computed.",
		}),
		years: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "investcalc",
			Name:      "projection_years",
			Help:      "Duration in years of computed projections.",
			Buckets:   []float64{0, 1, 5, 10, 20, 30, 50, 100},
		}),
		tasks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "investcalc",
			Name:      "open_tasks",
			Help:      "Tasks currently held across all users.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests,
		m.rpcDuration,
		m.projections,
		m.years,
		m.tasks,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveProjection records one computed projection of the given length.
func (m *Metrics) ObserveProjection(years int) {
	m.projections.Inc()
	m.years.Observe(float64(years))
}

// TaskAdded increments the open task gauge.
func (m *Metrics) TaskAdded() { m.tasks.Inc() }

// TaskCompleted decrements the open task gauge.
func (m *Metrics) TaskCompleted() { m.tasks.Dec() }

// Interceptor returns a Connect interceptor that counts and times every RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			m.rpcRequests.WithLabelValues(procedure, codeOf(err)).Inc()
			return resp, err
		}
	}
}

func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Code().String()
	}
	return connect.CodeUnknown.String()
}
