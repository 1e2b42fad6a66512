package logger

import (
	"time"

	"go.uber.org/zap"
)

// =================================================================================
// CAMPOS ESTÁNDAR - HTTP
// =================================================================================

func RequestID(v string) zap.Field { return zap.String("request_id", v) }

func Method(v string) zap.Field { return zap.String("method", v) }

func Path(v string) zap.Field { return zap.String("path", v) }

func Status(v int) zap.Field { return zap.Int("status", v) }

func Bytes(v int) zap.Field { return zap.Int("bytes", v) }

func DurationMs(d time.Duration) zap.Field { return zap.Int64("duration_ms", d.Milliseconds()) }

func ClientIP(v string) zap.Field { return zap.String("client_ip", v) }

// =================================================================================
// CAMPOS ESTÁNDAR - UPSTREAM (identity provider)
// =================================================================================

// Upstream identifica el provider externo ("auth0").
func Upstream(v string) zap.Field { return zap.String("upstream", v) }

// UpstreamOp es la operación contra el provider (token, signup, change_password).
func UpstreamOp(v string) zap.Field { return zap.String("upstream_op", v) }

// UpstreamStatus es el status HTTP devuelto por el provider (0 si no hubo respuesta).
func UpstreamStatus(v int) zap.Field { return zap.Int("upstream_status", v) }

// ErrorKind es la categoría de error clasificada (invalid_credentials, auth0_unavailable).
func ErrorKind(v string) zap.Field { return zap.String("error_kind", v) }

// Email agrega el email enmascarado.
func Email(v string) zap.Field { return zap.String("email", MaskEmail(v)) }

// =================================================================================
// CAMPOS ESTÁNDAR - SISTEMA
// =================================================================================

func Component(v string) zap.Field { return zap.String("component", v) }

func Op(v string) zap.Field { return zap.String("op", v) }

// Layer: controller, service, client.
func Layer(v string) zap.Field { return zap.String("layer", v) }

func Err(err error) zap.Field { return zap.Error(err) }

func String(key, v string) zap.Field { return zap.String(key, v) }

func Int(key string, v int) zap.Field { return zap.Int(key, v) }

func Any(key string, v any) zap.Field { return zap.Any(key, v) }
