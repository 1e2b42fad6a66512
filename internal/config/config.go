package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dropDatabas3/authrelay/internal/security/secretbox"
	"github.com/dropDatabas3/authrelay/internal/validation"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultScope se usa cuando auth0.scope no está configurado.
	DefaultScope = "openid profile email offline_access"

	tokenPath = "/oauth/token"
)

type Config struct {
	App struct {
		// dev | staging | prod
		Env      string `yaml:"env"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"app"`

	Server struct {
		Addr               string        `yaml:"addr"`
		CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
		ReadTimeout        time.Duration `yaml:"read_timeout"`
		WriteTimeout       time.Duration `yaml:"write_timeout"`
		ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Metrics struct {
		// Addr vacío => /metrics se sirve en el mismo listener que la API.
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`

	Auth0 Auth0 `yaml:"auth0"`
}

// Auth0 agrupa los datos del identity provider. Inmutable tras Load.
type Auth0 struct {
	Domain       string        `yaml:"domain"`
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	Audience     string        `yaml:"audience"`
	Realm        string        `yaml:"realm"` // database connection
	Scope        string        `yaml:"scope"`
	Timeout      time.Duration `yaml:"timeout"`
}

// BaseURL normaliza el domain: agrega https:// si no trae esquema y quita las barras finales.
func (a Auth0) BaseURL() string {
	s := strings.TrimSpace(a.Domain)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	return strings.TrimRight(s, "/")
}

// TokenPath es el endpoint OAuth de intercambio de credenciales.
func (a Auth0) TokenPath() string { return tokenPath }

// ResolvedScope devuelve el scope configurado o DefaultScope.
func (a Auth0) ResolvedScope() string {
	if strings.TrimSpace(a.Scope) == "" {
		return DefaultScope
	}
	return a.Scope
}

// Load lee el YAML (si path no está vacío), aplica defaults, overrides por env,
// descifra valores ENC(...) y valida. Cualquier falla impide el arranque.
func Load(path string) (*Config, error) {
	var c Config
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: leyendo %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("config: parseando %s: %w", path, err)
		}
	}

	c.applyEnvOverrides()
	c.applyDefaults()

	if err := c.revealSecrets(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15 * time.Second
	}
	if c.Auth0.Timeout == 0 {
		c.Auth0.Timeout = 10 * time.Second
	}
}

// revealSecrets descifra los campos sensibles escritos como ENC(...).
// La master password sólo se exige si hay al menos un valor cifrado.
func (c *Config) revealSecrets() error {
	fields := []*string{&c.Auth0.ClientID, &c.Auth0.ClientSecret, &c.Auth0.Domain, &c.Auth0.Audience, &c.Auth0.Realm, &c.Auth0.Scope}

	wrapped := false
	for _, f := range fields {
		if secretbox.IsWrapped(*f) {
			wrapped = true
			break
		}
	}
	if !wrapped {
		return nil
	}

	box, err := secretbox.FromEnv()
	if err != nil {
		return fmt.Errorf("config: hay valores ENC(...) pero %w", err)
	}
	for _, f := range fields {
		v, err := box.Reveal(*f)
		if err != nil {
			return fmt.Errorf("config: descifrando valor: %w", err)
		}
		*f = v
	}
	return nil
}

// FieldError describe un campo de configuración inválido.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// ValidationErrors acumula todos los campos inválidos encontrados por Validate.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Error()
	}
	return "config inválida: " + strings.Join(parts, "; ")
}

// Validate revisa los campos requeridos y devuelve ValidationErrors con todos
// los problemas, o nil.
func (c *Config) Validate() error {
	var errs ValidationErrors
	required := func(field, value, msg string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}

	required("auth0.domain", c.Auth0.Domain, "Auth0 domain must be provided")
	required("auth0.client_id", c.Auth0.ClientID, "Auth0 clientId must be provided")
	required("auth0.client_secret", c.Auth0.ClientSecret, "Auth0 clientSecret must be provided")
	required("auth0.audience", c.Auth0.Audience, "Auth0 audience must be provided")
	required("auth0.realm", c.Auth0.Realm, "Auth0 realm/database connection must be provided")

	if bad := validation.InvalidScopeTokens(c.Auth0.Scope); len(bad) > 0 {
		errs = append(errs, FieldError{Field: "auth0.scope", Message: fmt.Sprintf("invalid scope tokens %q", bad)})
	}
	if c.Auth0.Timeout < 0 {
		errs = append(errs, FieldError{Field: "auth0.timeout", Message: "must not be negative"})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// IsValidationError indica si err proviene de Validate.
func IsValidationError(err error) bool {
	var v ValidationErrors
	return errors.As(err, &v)
}

// ---- Helpers env ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func getEnvDur(key string) (time.Duration, bool) {
	if s, ok := getEnvStr(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(s)); err == nil {
			return d, true
		}
		// compat: segundos enteros
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return time.Duration(n) * time.Second, true
		}
	}
	return 0, false
}

func getEnvCSV(key string) ([]string, bool) {
	s, ok := getEnvStr(key)
	if !ok {
		return nil, false
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, true
}

// applyEnvOverrides: pisa el YAML con variables de entorno.
func (c *Config) applyEnvOverrides() {
	// APP
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = strings.ToLower(v)
	}
	if v, ok := getEnvStr("LOG_LEVEL"); ok {
		c.App.LogLevel = v
	}

	// SERVER
	if v, ok := getEnvStr("SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvCSV("SERVER_CORS_ALLOWED_ORIGINS"); ok {
		c.Server.CORSAllowedOrigins = v
	}
	if v, ok := getEnvDur("SERVER_READ_TIMEOUT"); ok {
		c.Server.ReadTimeout = v
	}
	if v, ok := getEnvDur("SERVER_WRITE_TIMEOUT"); ok {
		c.Server.WriteTimeout = v
	}
	if v, ok := getEnvDur("SERVER_SHUTDOWN_TIMEOUT"); ok {
		c.Server.ShutdownTimeout = v
	}

	// METRICS
	if v, ok := getEnvStr("METRICS_ADDR"); ok {
		c.Metrics.Addr = v
	}

	// AUTH0
	if v, ok := getEnvStr("AUTH0_DOMAIN"); ok {
		c.Auth0.Domain = v
	}
	if v, ok := getEnvStr("AUTH0_CLIENT_ID"); ok {
		c.Auth0.ClientID = v
	}
	if v, ok := getEnvStr("AUTH0_CLIENT_SECRET"); ok {
		c.Auth0.ClientSecret = v
	}
	if v, ok := getEnvStr("AUTH0_AUDIENCE"); ok {
		c.Auth0.Audience = v
	}
	if v, ok := getEnvStr("AUTH0_REALM"); ok {
		c.Auth0.Realm = v
	}
	if v, ok := getEnvStr("AUTH0_SCOPE"); ok {
		c.Auth0.Scope = v
	}
	if v, ok := getEnvDur("AUTH0_TIMEOUT"); ok {
		c.Auth0.Timeout = v
	}
}
