package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dropDatabas3/authrelay/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCfg(metricsAddr string) *config.Config {
	c := &config.Config{}
	c.Auth0 = config.Auth0{Domain: "tenant.auth0.com", ClientID: "c", ClientSecret: "s", Audience: "a", Realm: "r"}
	c.Metrics.Addr = metricsAddr
	return c
}

func TestBuild_SharedMetrics(t *testing.T) {
	h, err := Build(testCfg(""), Options{Registry: prometheus.NewRegistry()})
	require.NoError(t, err)
	assert.Nil(t, h.Metrics)

	rr := httptest.NewRecorder()
	h.API.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBuild_SeparateMetrics(t *testing.T) {
	h, err := Build(testCfg(":9100"), Options{Registry: prometheus.NewRegistry()})
	require.NoError(t, err)
	require.NotNil(t, h.Metrics)

	rr := httptest.NewRecorder()
	h.API.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	h.Metrics.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestBuild_NilConfig(t *testing.T) {
	_, err := Build(nil, Options{})
	assert.Error(t, err)
}
