package auth

import (
	"net/http"

	dto "github.com/dropDatabas3/authrelay/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/authrelay/internal/http/errors"
	"github.com/dropDatabas3/authrelay/internal/http/helpers"
	svc "github.com/dropDatabas3/authrelay/internal/http/services/auth"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
)

type VerificationController struct {
	service svc.VerificationService
}

func NewVerificationController(service svc.VerificationService) *VerificationController {
	return &VerificationController{service: service}
}

// Resend maneja POST /api/auth/resend-verification
func (c *VerificationController) Resend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("VerificationController.Resend"))

	var req dto.ResendVerificationRequest
	if err := helpers.ReadJSON(w, r, &req); err != nil {
		httperrors.WriteError(w, err)
		return
	}
	if err := helpers.Validate(&req); err != nil {
		validationFailed(log, err)
		httperrors.WriteError(w, err)
		return
	}

	res, err := c.service.ResendVerification(ctx, req)
	if err != nil {
		logServiceError(log, err)
		httperrors.WriteError(w, err)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, res)
}
