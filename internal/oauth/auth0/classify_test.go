package auth0

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		op     Operation
		status int
		body   string
		kind   Kind
		msg    string
		reason string
	}{
		{"login email not verified", OpExchangeCredentials, 401, `{"error":"unauthorized","error_description":"Please verify your email before logging in."}`, KindInvalidCredentials, msgEmailNotVerified, ReasonEmailNotVerified},
		{"login email not verified lowercase", OpExchangeCredentials, 403, `{"error":"unauthorized","error_description":"email not verified"}`, KindInvalidCredentials, msgEmailNotVerified, ReasonEmailNotVerified},
		{"login unauthorized", OpExchangeCredentials, 401, `{"error":"unauthorized","error_description":"blocked"}`, KindInvalidCredentials, "Invalid email or password", ""},
		{"login invalid grant", OpExchangeCredentials, 403, `{"error":"invalid_grant","error_description":"Wrong email or password."}`, KindInvalidCredentials, "Invalid email or password", ""},
		{"login other 4xx", OpExchangeCredentials, 429, `{"error":"too_many_attempts"}`, KindInvalidCredentials, `Authentication failed: {"error":"too_many_attempts"}`, ""},
		{"login 5xx", OpExchangeCredentials, 500, `{"error":"unauthorized"}`, KindUnavailable, "Auth0 returned an unexpected error", ""},
		{"login 3xx", OpExchangeCredentials, 302, ``, KindUnavailable, "Auth0 returned an unexpected error", ""},
		{"signup 4xx", OpSignup, 400, `{"code":"invalid_signup"}`, KindInvalidCredentials, `Signup failed: {"code":"invalid_signup"}`, ""},
		{"signup 5xx", OpSignup, 503, `down`, KindUnavailable, "Auth0 returned an unexpected error during signup", ""},
		{"resend 4xx", OpResendVerification, 400, `bad`, KindUnavailable, "Failed to resend verification email: bad", ""},
		{"resend 5xx", OpResendVerification, 502, `x`, KindUnavailable, "Auth0 returned an unexpected error", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Classify(tc.op, tc.status, tc.body)
			require.NotNil(t, e)
			assert.Equal(t, tc.kind, e.Kind)
			assert.Equal(t, tc.msg, e.Message)
			assert.Equal(t, tc.reason, e.Reason)
			assert.Equal(t, tc.status, e.Status)
			assert.Equal(t, tc.op, e.Op)
		})
	}
}

func TestClassify_Success(t *testing.T) {
	for _, op := range []Operation{OpExchangeCredentials, OpSignup, OpResendVerification} {
		assert.Nil(t, Classify(op, 200, "{}"))
		assert.Nil(t, Classify(op, 201, "{}"))
		assert.Nil(t, Classify(op, 204, ""))
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	e := TransportError(OpExchangeCredentials, cause)
	assert.Equal(t, KindUnavailable, e.Kind)
	assert.Equal(t, "Unable to reach Auth0 authentication service", e.Message)
	assert.ErrorIs(t, e, cause)

	assert.Equal(t, "Unable to reach Auth0 signup service", TransportError(OpSignup, cause).Message)
	assert.Equal(t, "Unable to reach Auth0 service", TransportError(OpResendVerification, cause).Message)

	var err error = e
	assert.True(t, IsUnavailable(err))
	assert.False(t, IsInvalidCredentials(err))
}
