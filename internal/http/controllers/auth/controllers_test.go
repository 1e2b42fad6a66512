package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dropDatabas3/authrelay/internal/config"
	svc "github.com/dropDatabas3/authrelay/internal/http/services/auth"
	"github.com/dropDatabas3/authrelay/internal/oauth/auth0"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstream struct {
	srv     *httptest.Server
	hits    atomic.Int32
	lastRaw atomic.Value
}

// newUpstream simula Auth0 respondiendo status/body fijos en cualquier path.
func newUpstream(t *testing.T, status int, body string) *upstream {
	t.Helper()
	u := &upstream{}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		b, _ := io.ReadAll(r.Body)
		u.lastRaw.Store(string(b))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func newControllers(baseURL string) *Controllers {
	client := auth0.New(config.Auth0{
		Domain:       baseURL,
		ClientID:     "cid",
		ClientSecret: "csecret",
		Audience:     "aud",
		Realm:        "db",
		Timeout:      2 * time.Second,
	})
	return NewControllers(svc.NewServices(svc.Deps{Provider: client}))
}

func do(h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var b struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b))
	return b.Code, b.Message
}

func TestLogin_Success(t *testing.T) {
	up := newUpstream(t, 200, `{"access_token":"access","id_token":"id","refresh_token":"refresh","expires_in":86400,"token_type":"Bearer","scope":"openid profile email"}`)
	c := newControllers(up.srv.URL)

	rr := do(c.Login.Login, "/api/auth/login", `{"email":"user@example.com","password":"password123"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"accessToken":"access","idToken":"id","refreshToken":"refresh","expiresIn":86400,"tokenType":"Bearer","scope":"openid profile email"}`, rr.Body.String())
}

func TestLogin_ProviderRejections(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   int
		code   string
		msg    string
	}{
		{"invalid grant", 401, `{"error":"invalid_grant","error_description":"Wrong email or password."}`, 401, "invalid_credentials", "Invalid email or password"},
		{"email not verified", 401, `{"error":"unauthorized","error_description":"Please verify your email before logging in."}`, 401, "invalid_credentials", "Email not verified. Please check your email and click the verification link."},
		{"provider down", 500, `{}`, 502, "auth0_unavailable", "Auth0 returned an unexpected error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			up := newUpstream(t, tc.status, tc.body)
			rr := do(newControllers(up.srv.URL).Login.Login, "/api/auth/login", `{"email":"user@example.com","password":"password123"}`)

			assert.Equal(t, tc.want, rr.Code)
			code, msg := errorBody(t, rr)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestLogin_ValidationNeverReachesProvider(t *testing.T) {
	up := newUpstream(t, 200, `{}`)
	c := newControllers(up.srv.URL)

	cases := map[string]string{
		`{"email":"not-an-email","password":"password123"}`: "Email must be a valid address",
		`{"email":"user@example.com","password":"short"}`:    "Password must be at least 8 characters long",
		`{"password":"password123"}`:                         "Email is required",
		`{"email":"user@example.com"}`:                       "Password is required",
		``:                                                   "Email is required",
	}
	for body, want := range cases {
		rr := do(c.Login.Login, "/api/auth/login", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		code, msg := errorBody(t, rr)
		assert.Equal(t, "validation_failed", code)
		assert.Equal(t, want, msg, body)
	}
	assert.Zero(t, up.hits.Load())
}

func TestLogin_MalformedJSON(t *testing.T) {
	up := newUpstream(t, 200, `{}`)
	rr := do(newControllers(up.srv.URL).Login.Login, "/api/auth/login", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	code, _ := errorBody(t, rr)
	assert.Equal(t, "invalid_json", code)
	assert.Zero(t, up.hits.Load())
}

func TestLogin_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	rr := do(newControllers(url).Login.Login, "/api/auth/login", `{"email":"user@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	code, msg := errorBody(t, rr)
	assert.Equal(t, "auth0_unavailable", code)
	assert.Equal(t, "Unable to reach Auth0 authentication service", msg)
}

func TestSignup(t *testing.T) {
	up := newUpstream(t, 200, `{"_id":"abc","email":"new@example.com","email_verified":false,"given_name":"Ada","family_name":"Lovelace"}`)
	c := newControllers(up.srv.URL)

	rr := do(c.Signup.Signup, "/api/auth/signup", `{"email":"new@example.com","password":"password123","name":"","givenName":"Ada","familyName":"Lovelace"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "abc", got["_id"])
	assert.Equal(t, false, got["email_verified"])
	assert.Equal(t, "Ada", got["given_name"])

	raw, _ := up.lastRaw.Load().(string)
	assert.Contains(t, raw, `"given_name":"Ada"`)
	assert.Contains(t, raw, `"family_name":"Lovelace"`)
	assert.NotContains(t, raw, `"name"`)
}

func TestSignup_DoesNotAddMissingFields(t *testing.T) {
	up := newUpstream(t, 201, `{"_id":"abc","email":"new@example.com","email_verified":false}`)
	rr := do(newControllers(up.srv.URL).Signup.Signup, "/api/auth/signup", `{"email":"new@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"_id":"abc","email":"new@example.com","email_verified":false}`, rr.Body.String())
}

func TestSignup_Errors(t *testing.T) {
	up := newUpstream(t, 400, `{"code":"invalid_signup","description":"Invalid sign up"}`)
	rr := do(newControllers(up.srv.URL).Signup.Signup, "/api/auth/signup", `{"email":"new@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	code, msg := errorBody(t, rr)
	assert.Equal(t, "invalid_credentials", code)
	assert.Equal(t, `Signup failed: {"code":"invalid_signup","description":"Invalid sign up"}`, msg)

	down := newUpstream(t, 503, ``)
	rr = do(newControllers(down.srv.URL).Signup.Signup, "/api/auth/signup", `{"email":"new@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestResendVerification(t *testing.T) {
	up := newUpstream(t, 200, `"We've just sent you an email."`)
	c := newControllers(up.srv.URL)

	rr := do(c.Verification.Resend, "/api/auth/resend-verification", `{"email":"user@example.com"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Verification email sent. Please check your inbox."}`, rr.Body.String())

	rr = do(c.Verification.Resend, "/api/auth/resend-verification", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	_, msg := errorBody(t, rr)
	assert.Equal(t, "Email must be valid", msg)
	assert.Equal(t, int32(1), up.hits.Load())
}

func TestResendVerification_ProviderErrors(t *testing.T) {
	for _, status := range []int{400, 500} {
		up := newUpstream(t, status, `{"error":"x"}`)
		rr := do(newControllers(up.srv.URL).Verification.Resend, "/api/auth/resend-verification", `{"email":"user@example.com"}`)
		assert.Equal(t, http.StatusBadGateway, rr.Code)
		code, _ := errorBody(t, rr)
		assert.Equal(t, "auth0_unavailable", code)
	}
}

// el contexto cancelado del request corta la llamada saliente
func TestLogin_RequestContextCancelled(t *testing.T) {
	up := newUpstream(t, 200, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"user@example.com","password":"password123"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	newControllers(up.srv.URL).Login.Login(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Zero(t, up.hits.Load())
}
