package auth0

import (
	"errors"
	"fmt"
)

// Kind separa culpa del caller de culpa del provider.
type Kind int

const (
	// KindInvalidCredentials: Auth0 rechazó lo que mandó el usuario.
	KindInvalidCredentials Kind = iota + 1
	// KindUnavailable: Auth0 falló, no respondió o respondió algo inesperado.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUnavailable:
		return "auth0_unavailable"
	default:
		return "unknown"
	}
}

// ReasonEmailNotVerified se adjunta al rechazo de login por email sin verificar.
const ReasonEmailNotVerified = "email_not_verified"

// Operation identifica la llamada saliente; define la tabla de mensajes.
type Operation string

const (
	OpExchangeCredentials Operation = "exchange_credentials"
	OpSignup              Operation = "signup"
	OpResendVerification  Operation = "resend_verification"
)

// Error es el único tipo de error que devuelve el cliente.
type Error struct {
	Kind    Kind
	Op      Operation
	Reason  string // opcional, p.ej. ReasonEmailNotVerified
	Message string
	Status  int // status de Auth0; 0 si no hubo respuesta
	Err     error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("auth0 %s: %s (status %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("auth0 %s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// AsError extrae un *Error de la cadena de err.
func AsError(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsInvalidCredentials indica si err es un rechazo atribuible al usuario.
func IsInvalidCredentials(err error) bool {
	ae, ok := AsError(err)
	return ok && ae.Kind == KindInvalidCredentials
}

// IsUnavailable indica si err es una falla del provider o de red.
func IsUnavailable(err error) bool {
	ae, ok := AsError(err)
	return ok && ae.Kind == KindUnavailable
}
