// Package metrics define los collectors Prometheus del relay: tráfico HTTP entrante
// y llamadas salientes al identity provider. Vive en un paquete propio para que
// tanto el cliente Auth0 como los middlewares HTTP lo importen sin ciclos.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Número total de requests procesadas",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latencia de los requests HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	HTTPInflight = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "http_inflight_requests",
		Help: "Requests en vuelo por método y ruta",
	}, []string{"method", "path"})

	// outcome: ok | invalid_credentials | auth0_unavailable
	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth0_requests_total",
		Help: "Llamadas salientes a Auth0 por operación y resultado",
	}, []string{"op", "outcome"})

	UpstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "auth0_request_duration_seconds",
		Help:    "Latencia de las llamadas a Auth0",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"op"})
)

// Register registra todos los collectors en reg (default si nil). Idempotente.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		HTTPRequestsTotal,
		HTTPRequestDuration,
		HTTPInflight,
		UpstreamRequestsTotal,
		UpstreamDuration,
	} {
		if err := registerCollector(reg, c); err != nil {
			return err
		}
	}
	return nil
}

// Handler expone el registry default en formato Prometheus.
func Handler() http.Handler { return promhttp.Handler() }

// ObserveUpstream registra una llamada al provider.
func ObserveUpstream(op, outcome string, d time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(op, outcome).Inc()
	UpstreamDuration.WithLabelValues(op).Observe(d.Seconds())
}

// registerCollector registra el collector en el registry indicado, ignorando duplicados.
func registerCollector(reg prometheus.Registerer, collector prometheus.Collector) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return err
	}
	return nil
}
