package auth

import (
	"context"

	dto "github.com/dropDatabas3/authrelay/internal/http/dto/auth"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
)

type loginService struct {
	deps Deps
}

// NewLoginService crea un nuevo servicio de login.
func NewLoginService(deps Deps) LoginService {
	return &loginService{deps: deps}
}

func (s *loginService) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.login"),
		logger.Op("Login"),
	)

	tok, err := s.deps.Provider.ExchangeCredentials(ctx, in.Email, in.Password)
	if err != nil {
		log.Debug("credential exchange failed", logger.Err(err))
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  tok.AccessToken,
		IDToken:      tok.IDToken,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    tok.ExpiresIn,
		TokenType:    tok.TokenType,
		Scope:        tok.Scope,
	}, nil
}
