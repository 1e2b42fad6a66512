package health

import (
	"context"
	"fmt"
	"os"
	"time"

	dto "github.com/dropDatabas3/authrelay/internal/http/dto/health"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
)

// HealthService define las operaciones de health check.
type HealthService interface {
	Check(ctx context.Context) dto.HealthResponse
}

// ProviderChecker abstrae el ping al identity provider.
type ProviderChecker interface {
	Ping(ctx context.Context) error
}

// Deps contiene las dependencias inyectables para el health service.
type Deps struct {
	Provider     ProviderChecker
	CheckTimeout time.Duration // 0 => 3s
}

type healthService struct {
	deps Deps
}

// NewHealthService crea un nuevo service de health check.
func NewHealthService(deps Deps) HealthService {
	if deps.CheckTimeout <= 0 {
		deps.CheckTimeout = 3 * time.Second
	}
	return &healthService{deps: deps}
}

const componentHealth = "health"

// Check nunca devuelve "unavailable": el relay puede atender aunque Auth0 esté caído
// (responderá 502), así que un provider inalcanzable sólo degrada.
func (s *healthService) Check(ctx context.Context) dto.HealthResponse {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentHealth),
		logger.Op("Check"),
	)

	response := dto.HealthResponse{
		Status:     "ready",
		Components: make(map[string]dto.HealthStatus),
		Version:    os.Getenv("SERVICE_VERSION"),
		Commit:     os.Getenv("SERVICE_COMMIT"),
		Timestamp:  time.Now().UTC(),
	}

	if s.deps.Provider == nil {
		response.Components["auth0"] = dto.HealthStatus{Status: "disabled"}
		return response
	}

	pctx, cancel := context.WithTimeout(ctx, s.deps.CheckTimeout)
	defer cancel()

	if err := s.deps.Provider.Ping(pctx); err != nil {
		response.Components["auth0"] = dto.HealthStatus{
			Status:  "error",
			Message: fmt.Sprintf("unavailable: %v", err),
		}
		response.Status = "degraded"
		log.Warn("auth0 unreachable", logger.Err(err))
	} else {
		response.Components["auth0"] = dto.HealthStatus{Status: "ok"}
	}

	return response
}
