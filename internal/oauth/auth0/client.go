// Package auth0 es el cliente saliente hacia el identity provider: intercambio de
// credenciales (password-realm), alta en la database connection y reenvío del
// email de verificación. Toda respuesta no exitosa se traduce a *Error vía Classify.
package auth0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dropDatabas3/authrelay/internal/config"
	"github.com/dropDatabas3/authrelay/internal/metrics"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
	"go.uber.org/zap"
)

const (
	passwordRealmGrant = "http://auth0.com/oauth/grant-type/password-realm"

	signupPath         = "/dbconnections/signup"
	changePasswordPath = "/dbconnections/change_password"
	discoveryPath      = "/.well-known/openid-configuration"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

type Client struct {
	cfg     config.Auth0
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient reemplaza el http.Client interno (tests, transports custom).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func New(cfg config.Auth0, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		cfg:     cfg,
		baseURL: cfg.BaseURL(),
		http:    &http.Client{Timeout: timeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// ExchangeCredentials hace el grant password-realm contra /oauth/token.
func (c *Client) ExchangeCredentials(ctx context.Context, email, password string) (*TokenResult, error) {
	payload := tokenPayload{
		GrantType:    passwordRealmGrant,
		Username:     email,
		Password:     password,
		Audience:     c.cfg.Audience,
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		Realm:        c.cfg.Realm,
		Scope:        c.cfg.ResolvedScope(),
	}
	var out TokenResult
	if err := c.post(ctx, OpExchangeCredentials, c.cfg.TokenPath(), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignUp crea el usuario en la database connection (realm).
func (c *Client) SignUp(ctx context.Context, in SignupRequest) (*SignupResult, error) {
	payload := signupPayload{
		ClientID:   c.cfg.ClientID,
		Email:      in.Email,
		Password:   in.Password,
		Connection: c.cfg.Realm,
		Name:       nonBlank(in.Name),
		GivenName:  nonBlank(in.GivenName),
		FamilyName: nonBlank(in.FamilyName),
	}
	var out SignupResult
	if err := c.post(ctx, OpSignup, signupPath, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendVerificationEmail dispara el flujo de Auth0 que envía el email al usuario.
// Sólo importa que la llamada no falle; el body de respuesta se descarta.
func (c *Client) ResendVerificationEmail(ctx context.Context, email string) error {
	payload := changePasswordPayload{
		ClientID:   c.cfg.ClientID,
		Email:      email,
		Connection: c.cfg.Realm,
	}
	return c.post(ctx, OpResendVerification, changePasswordPath, payload, nil)
}

// Ping verifica que el tenant responda su documento de discovery.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+discoveryPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("discovery http %d", resp.StatusCode)
	}
	var dd discoveryDoc
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&dd); err != nil {
		return fmt.Errorf("discovery decode: %w", err)
	}
	if dd.Issuer == "" {
		return fmt.Errorf("discovery sin issuer")
	}
	return nil
}

func (c *Client) post(ctx context.Context, op Operation, path string, payload, out any) (err error) {
	log := logger.From(ctx).With(
		logger.Layer("client"),
		logger.Component("auth0"),
		logger.UpstreamOp(string(op)),
	)

	start := time.Now()
	outcome := "ok"
	defer func() {
		if ae, ok := AsError(err); ok {
			outcome = ae.Kind.String()
		}
		metrics.ObserveUpstream(string(op), outcome, time.Since(start))
	}()

	b, err := json.Marshal(payload)
	if err != nil {
		return TransportError(op, fmt.Errorf("encoding payload: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return TransportError(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("auth0 inalcanzable", logger.Err(err), logger.DurationMs(time.Since(start)))
		return TransportError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn("error leyendo respuesta de auth0", logger.Err(err), logger.UpstreamStatus(resp.StatusCode))
		return TransportError(op, fmt.Errorf("reading response: %w", err))
	}

	if ae := Classify(op, resp.StatusCode, string(body)); ae != nil {
		fields := []zap.Field{
			logger.UpstreamStatus(resp.StatusCode),
			logger.ErrorKind(ae.Kind.String()),
			logger.DurationMs(time.Since(start)),
		}
		if ae.Reason != "" {
			fields = append(fields, zap.String("reason", ae.Reason))
		}
		if ae.Kind == KindUnavailable {
			log.Error("auth0 respondió con error", fields...)
		} else {
			log.Info("auth0 rechazó la solicitud", fields...)
		}
		return ae
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			log.Error("respuesta de auth0 ilegible", logger.Err(err), logger.UpstreamStatus(resp.StatusCode))
			return TransportError(op, fmt.Errorf("decoding response: %w", err))
		}
	}

	log.Debug("auth0 ok", logger.UpstreamStatus(resp.StatusCode), logger.DurationMs(time.Since(start)))
	return nil
}

func nonBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
