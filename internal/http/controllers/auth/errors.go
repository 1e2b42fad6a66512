package auth

import (
	httperrors "github.com/dropDatabas3/authrelay/internal/http/errors"
	"github.com/dropDatabas3/authrelay/internal/oauth/auth0"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
	"go.uber.org/zap"
)

// logServiceError deja rastro del kind/razón antes de traducir el error.
// Las fallas del provider van a Warn; los rechazos del usuario a Info.
func logServiceError(log *zap.Logger, err error) {
	ae, ok := auth0.AsError(err)
	if !ok {
		log.Error("unexpected service error", logger.Err(err))
		return
	}
	fields := []zap.Field{logger.ErrorKind(ae.Kind.String()), logger.UpstreamStatus(ae.Status)}
	if ae.Reason != "" {
		fields = append(fields, zap.String("reason", ae.Reason))
	}
	if ae.Kind == auth0.KindUnavailable {
		log.Warn("auth0 unavailable", append(fields, logger.Err(err))...)
		return
	}
	log.Info("request rejected by auth0", fields...)
}

// validationFailed sólo se loguea en debug: es input del usuario.
func validationFailed(log *zap.Logger, err error) {
	if ae := httperrors.FromError(err); ae != nil {
		log.Debug("validation failed", zap.String("message", ae.Message))
	}
}
