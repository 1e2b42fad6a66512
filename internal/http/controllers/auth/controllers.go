// Package auth contiene los controllers de /api/auth.
package auth

import (
	svc "github.com/dropDatabas3/authrelay/internal/http/services/auth"
)

// Controllers agrupa todos los controllers del dominio auth.
type Controllers struct {
	Login        *LoginController
	Signup       *SignupController
	Verification *VerificationController
}

// NewControllers crea el agregador de controllers auth.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Login:        NewLoginController(s.Login),
		Signup:       NewSignupController(s.Signup),
		Verification: NewVerificationController(s.Verification),
	}
}
