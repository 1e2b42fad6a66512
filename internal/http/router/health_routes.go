package router

import (
	ctrl "github.com/dropDatabas3/authrelay/internal/http/controllers/health"
	"github.com/go-chi/chi/v5"
)

// RegisterHealthRoutes registra /healthz y /readyz. Públicos y sin logging (muy frecuentes).
func RegisterHealthRoutes(r chi.Router, c *ctrl.Controllers) {
	r.Get("/healthz", c.Health.Healthz)
	r.Get("/readyz", c.Health.Readyz)
}
