package auth

import (
	"context"

	dto "github.com/dropDatabas3/authrelay/internal/http/dto/auth"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
)

// VerificationSentMessage se devuelve siempre que Auth0 acepte el pedido.
// Auth0 no informa si el email existe, así que tampoco lo hacemos nosotros.
const VerificationSentMessage = "Verification email sent. Please check your inbox."

type verificationService struct {
	deps Deps
}

// NewVerificationService crea un nuevo servicio de reenvío de verificación.
func NewVerificationService(deps Deps) VerificationService {
	return &verificationService{deps: deps}
}

func (s *verificationService) ResendVerification(ctx context.Context, in dto.ResendVerificationRequest) (*dto.ResendVerificationResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.verification"),
		logger.Op("ResendVerification"),
	)

	if err := s.deps.Provider.ResendVerificationEmail(ctx, in.Email); err != nil {
		log.Warn("resend verification failed", logger.Err(err))
		return nil, err
	}

	log.Debug("verification email requested", logger.Email(in.Email))
	return &dto.ResendVerificationResponse{Message: VerificationSentMessage}, nil
}
