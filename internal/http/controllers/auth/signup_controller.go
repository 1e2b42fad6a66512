package auth

import (
	"net/http"

	dto "github.com/dropDatabas3/authrelay/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/authrelay/internal/http/errors"
	"github.com/dropDatabas3/authrelay/internal/http/helpers"
	svc "github.com/dropDatabas3/authrelay/internal/http/services/auth"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
)

// SignupController maneja el alta de usuarios.
type SignupController struct {
	service svc.SignupService
}

func NewSignupController(service svc.SignupService) *SignupController {
	return &SignupController{service: service}
}

// Signup maneja POST /api/auth/signup. Responde 201 con el usuario de Auth0.
func (c *SignupController) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("SignupController.Signup"))

	var req dto.SignupRequest
	if err := helpers.ReadJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	if err := helpers.Validate(&req); err != nil {
		validationFailed(log, err)
		httperrors.WriteError(w, err)
		return
	}

	res, err := c.service.Signup(ctx, req)
	if err != nil {
		logServiceError(log, err)
		httperrors.WriteError(w, err)
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, res)
}
