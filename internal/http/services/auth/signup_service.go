package auth

import (
	"context"

	dto "github.com/dropDatabas3/authrelay/internal/http/dto/auth"
	"github.com/dropDatabas3/authrelay/internal/oauth/auth0"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
)

type signupService struct {
	deps Deps
}

// NewSignupService crea un nuevo servicio de alta.
func NewSignupService(deps Deps) SignupService {
	return &signupService{deps: deps}
}

// Signup devuelve el usuario creado tal cual lo responde Auth0.
func (s *signupService) Signup(ctx context.Context, in dto.SignupRequest) (*auth0.SignupResult, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.signup"),
		logger.Op("Signup"),
	)

	res, err := s.deps.Provider.SignUp(ctx, auth0.SignupRequest{
		Email:      in.Email,
		Password:   in.Password,
		Name:       in.Name,
		GivenName:  in.GivenName,
		FamilyName: in.FamilyName,
	})
	if err != nil {
		log.Debug("signup failed", logger.Err(err))
		return nil, err
	}

	log.Info("user created", logger.String("user_id", res.ID))
	return res, nil
}
