// Package auth contiene los services de autenticación. Son adaptadores finos
// entre los DTOs HTTP y el cliente de Auth0: no deciden nada por su cuenta.
package auth

import (
	"context"

	dto "github.com/dropDatabas3/authrelay/internal/http/dto/auth"
	"github.com/dropDatabas3/authrelay/internal/oauth/auth0"
)

// IdentityProvider es lo que los services necesitan del cliente de Auth0.
type IdentityProvider interface {
	ExchangeCredentials(ctx context.Context, email, password string) (*auth0.TokenResult, error)
	SignUp(ctx context.Context, in auth0.SignupRequest) (*auth0.SignupResult, error)
	ResendVerificationEmail(ctx context.Context, email string) error
}

// LoginService define las operaciones de login.
type LoginService interface {
	// Login intercambia email/password por el token set del provider.
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// SignupService define el alta de usuarios.
type SignupService interface {
	Signup(ctx context.Context, in dto.SignupRequest) (*auth0.SignupResult, error)
}

// VerificationService define el reenvío del email de verificación.
type VerificationService interface {
	ResendVerification(ctx context.Context, in dto.ResendVerificationRequest) (*dto.ResendVerificationResponse, error)
}
