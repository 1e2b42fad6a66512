package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/dropDatabas3/authrelay/internal/oauth/auth0"
)

// errorResponse es exactamente lo que ve el cliente.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FromError convierte cualquier error en *AppError.
// Los *auth0.Error ya vienen clasificados: sólo se mapea el Kind a status/code.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	if ae, ok := auth0.AsError(err); ok {
		switch ae.Kind {
		case auth0.KindInvalidCredentials:
			return ErrInvalidCredentials.WithMessage(ae.Message).WithCause(err)
		case auth0.KindUnavailable:
			return ErrAuth0Unavailable.WithMessage(ae.Message).WithCause(err)
		}
	}
	return ErrInternalServerError.WithCause(err)
}

// WriteError escribe {code, message} con el status del AppError.
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)
	if appErr == nil {
		appErr = ErrInternalServerError
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}
