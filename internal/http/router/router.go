// Package router arma el árbol de rutas chi del relay.
package router

import (
	"net/http"

	authctrl "github.com/dropDatabas3/authrelay/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/authrelay/internal/http/controllers/health"
	httperrors "github.com/dropDatabas3/authrelay/internal/http/errors"
	mw "github.com/dropDatabas3/authrelay/internal/http/middlewares"
	"github.com/go-chi/chi/v5"
)

// Deps contiene todo lo que el router necesita.
type Deps struct {
	AuthControllers   *authctrl.Controllers
	HealthControllers *healthctrl.Controllers

	CORSAllowedOrigins []string

	// MetricsHandler se monta en /metrics si no es nil (listener compartido).
	MetricsHandler http.Handler
}

// New construye el handler raíz. Middlewares globales: recover, request id,
// métricas y logging; cada grupo agrega los suyos.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithMetrics(),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	if deps.HealthControllers != nil {
		RegisterHealthRoutes(r, deps.HealthControllers)
	}
	if deps.AuthControllers != nil {
		RegisterAuthRoutes(r, AuthRouterDeps{
			Controllers:        deps.AuthControllers,
			CORSAllowedOrigins: deps.CORSAllowedOrigins,
		})
	}
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	return r
}
