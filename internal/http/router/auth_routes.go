package router

import (
	ctrl "github.com/dropDatabas3/authrelay/internal/http/controllers/auth"
	mw "github.com/dropDatabas3/authrelay/internal/http/middlewares"
	"github.com/go-chi/chi/v5"
)

// AuthRouterDeps contiene las dependencias para el router de auth.
type AuthRouterDeps struct {
	Controllers        *ctrl.Controllers
	CORSAllowedOrigins []string
}

// RegisterAuthRoutes registra /api/auth/*.
func RegisterAuthRoutes(r chi.Router, deps AuthRouterDeps) {
	c := deps.Controllers

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(
			mw.WithCORS(deps.CORSAllowedOrigins),
			mw.WithSecurityHeaders(),
			mw.WithNoStore(),
			mw.WithLogging(),
		)

		// POST /api/auth/login
		r.Post("/login", c.Login.Login)
		// POST /api/auth/signup
		r.Post("/signup", c.Signup.Signup)
		// POST /api/auth/resend-verification
		r.Post("/resend-verification", c.Verification.Resend)
	})
}
