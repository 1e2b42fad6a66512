package auth0

import "strings"

const (
	msgEmailNotVerified   = "Email not verified. Please check your email and click the verification link."
	msgInvalidCredentials = "Invalid email or password"
	msgUnexpected         = "Auth0 returned an unexpected error"
)

// Classify traduce un status + body de Auth0 a *Error. Devuelve nil para 2xx.
// Es pura: no hace IO ni loguea.
func Classify(op Operation, status int, body string) *Error {
	if status >= 200 && status < 300 {
		return nil
	}
	clientErr := status >= 400 && status < 500

	switch op {
	case OpExchangeCredentials:
		if !clientErr {
			return unavailable(op, status, msgUnexpected)
		}
		switch {
		case strings.Contains(body, `"error":"unauthorized"`):
			if strings.Contains(body, "email not verified") || strings.Contains(body, "Please verify your email") {
				e := invalid(op, status, msgEmailNotVerified)
				e.Reason = ReasonEmailNotVerified
				return e
			}
			return invalid(op, status, msgInvalidCredentials)
		case strings.Contains(body, `"error":"invalid_grant"`):
			return invalid(op, status, msgInvalidCredentials)
		default:
			return invalid(op, status, "Authentication failed: "+body)
		}

	case OpSignup:
		if clientErr {
			return invalid(op, status, "Signup failed: "+body)
		}
		return unavailable(op, status, "Auth0 returned an unexpected error during signup")

	case OpResendVerification:
		// un 4xx acá también es falla del provider
		if clientErr {
			return unavailable(op, status, "Failed to resend verification email: "+body)
		}
		return unavailable(op, status, msgUnexpected)
	}

	return unavailable(op, status, msgUnexpected)
}

// TransportError envuelve fallas sin respuesta utilizable (red, timeout, body ilegible).
func TransportError(op Operation, err error) *Error {
	var msg string
	switch op {
	case OpExchangeCredentials:
		msg = "Unable to reach Auth0 authentication service"
	case OpSignup:
		msg = "Unable to reach Auth0 signup service"
	default:
		msg = "Unable to reach Auth0 service"
	}
	return &Error{Kind: KindUnavailable, Op: op, Message: msg, Err: err}
}

func invalid(op Operation, status int, msg string) *Error {
	return &Error{Kind: KindInvalidCredentials, Op: op, Message: msg, Status: status}
}

func unavailable(op Operation, status int, msg string) *Error {
	return &Error{Kind: KindUnavailable, Op: op, Message: msg, Status: status}
}
