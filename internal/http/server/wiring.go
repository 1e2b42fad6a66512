// Package server conecta config, cliente Auth0, services, controllers y router.
package server

import (
	"fmt"
	"net/http"

	"github.com/dropDatabas3/authrelay/internal/config"
	authctrl "github.com/dropDatabas3/authrelay/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/authrelay/internal/http/controllers/health"
	"github.com/dropDatabas3/authrelay/internal/http/router"
	authsvc "github.com/dropDatabas3/authrelay/internal/http/services/auth"
	mw "github.com/dropDatabas3/authrelay/internal/http/middlewares"
	healthsvc "github.com/dropDatabas3/authrelay/internal/http/services/health"
	"github.com/dropDatabas3/authrelay/internal/metrics"
	"github.com/dropDatabas3/authrelay/internal/oauth/auth0"
	"github.com/prometheus/client_golang/prometheus"
)

// Handlers es el resultado del wiring.
type Handlers struct {
	// API sirve /api/auth/*, /healthz, /readyz y, si Metrics es nil, /metrics.
	API http.Handler
	// Metrics != nil cuando cfg.Metrics.Addr pide un listener propio.
	Metrics http.Handler
}

// Options permite inyectar piezas en tests.
type Options struct {
	Registry   prometheus.Registerer // nil => default
	HTTPClient *http.Client          // nil => cliente con cfg.Auth0.Timeout
}

// Build arma los handlers a partir de una config ya validada.
func Build(cfg *config.Config, opts Options) (*Handlers, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server: config nil")
	}
	if err := metrics.Register(opts.Registry); err != nil {
		return nil, fmt.Errorf("server: registrando métricas: %w", err)
	}

	client := auth0.New(cfg.Auth0, auth0.WithHTTPClient(opts.HTTPClient))

	authControllers := authctrl.NewControllers(authsvc.NewServices(authsvc.Deps{Provider: client}))
	healthControllers := healthctrl.NewControllers(healthsvc.NewServices(healthsvc.Deps{Provider: client}))

	out := &Handlers{}
	deps := router.Deps{
		AuthControllers:    authControllers,
		HealthControllers:  healthControllers,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}
	if cfg.Metrics.Addr == "" {
		deps.MetricsHandler = metrics.Handler()
	} else {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		out.Metrics = mw.Chain(mux, mw.WithRecover(), mw.WithRequestID())
	}
	out.API = router.New(deps)
	return out, nil
}
