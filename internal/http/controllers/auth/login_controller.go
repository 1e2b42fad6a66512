package auth

import (
	"net/http"

	dto "github.com/dropDatabas3/authrelay/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/authrelay/internal/http/errors"
	"github.com/dropDatabas3/authrelay/internal/http/helpers"
	svc "github.com/dropDatabas3/authrelay/internal/http/services/auth"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
)

// LoginController maneja el endpoint de login.
type LoginController struct {
	service svc.LoginService
}

// NewLoginController crea un nuevo controller de login.
func NewLoginController(service svc.LoginService) *LoginController {
	return &LoginController{service: service}
}

// Login maneja POST /api/auth/login
func (c *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("LoginController.Login"))

	var req dto.LoginRequest
	if err := helpers.ReadJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	if err := helpers.Validate(&req); err != nil {
		validationFailed(log, err)
		httperrors.WriteError(w, err)
		return
	}

	res, err := c.service.Login(ctx, req)
	if err != nil {
		logServiceError(log, err)
		httperrors.WriteError(w, err)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, res)
}
