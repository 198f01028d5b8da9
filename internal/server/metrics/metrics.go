// Package metrics exposes Prometheus instruments for the catalog server and
// the HTTP endpoint that serves them.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	RPCRequests *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec
	CatalogSize prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers the server instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	return NewWithRegistry(reg, reg)
}

func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RPCRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stackpick_rpc_requests_total",
				Help: "Total number of handled RPCs",
			},
			[]string{"method", "code"},
		),
		RPCDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stackpick_rpc_duration_seconds",
				Help:    "Duration of RPC handling in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		CatalogSize: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "stackpick_catalog_templates",
				Help: "Number of templates in the served catalog",
			},
		),
		gatherer: g,
	}
}

// Observe records one finished RPC.
func (m *Metrics) Observe(method, code string, elapsed time.Duration) {
	m.RPCRequests.WithLabelValues(method, code).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
