package middlewares

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dropDatabas3/authrelay/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute agrupa 404/405 bajo un único label.
const unmatchedRoute = "unmatched"

// WithMetrics instrumenta requests HTTP (contador, latencia, inflight).
// El label path es el patrón de chi; lo que no matchea ninguna ruta va a "unmatched".
func WithMetrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method := strings.ToUpper(r.Method)
			path := routeLabel(r)

			metrics.HTTPInflight.WithLabelValues(method, path).Inc()
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				metrics.HTTPInflight.WithLabelValues(method, path).Dec()
				metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
				metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

// routeLabel resuelve el patrón antes de rutear, así inflight y contadores comparten label.
func routeLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return unmatchedRoute
	}
	if p := rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path); p != "" {
		return p
	}
	return unmatchedRoute
}
