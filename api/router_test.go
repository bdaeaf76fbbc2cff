package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"filazero/config"
	"filazero/middleware/ratelimit"
	"filazero/middleware/ratelimit/domain"
	"filazero/middleware/ratelimit/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2026, 10, 19, 13, 45, 30, 123_000_000, time.FixedZone("BRT", -3*3600))

func testConfig(t *testing.T, vars map[string]string) config.API {
	t.Helper()
	if vars == nil {
		vars = map[string]string{}
	}
	cfg, err := config.LoadAPIFrom(vars)
	require.NoError(t, err)
	return cfg
}

func newTestHandler(t *testing.T, vars map[string]string) http.Handler {
	t.Helper()
	cfg := testConfig(t, vars)
	stats := infra.NewMemoryStatsStore()
	return NewHandler(Options{
		Config:      cfg,
		Limiter:     infra.NewStore(cfg.RateRPS, cfg.RateBurst),
		Stats:       stats,
		StatsReader: stats,
		Now:         func() time.Time { return fixedNow },
	})
}

func do(h http.Handler, method, path string, hdr map[string]string, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.RemoteAddr = "10.0.0.1:5000"
	for k, v := range hdr {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestRoot_ReportsRunning(t *testing.T) {
	w := do(newTestHandler(t, nil), http.MethodGet, "/", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var got StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, StatusResponse{
		Message:     RootMessage,
		Environment: "development",
		Timestamp:   "2026-10-19T16:45:30.123Z",
		Status:      "running",
	}, got)
}

func TestHealth_ReportsSuccess(t *testing.T) {
	w := do(newTestHandler(t, map[string]string{"NODE_ENV": "production", "APP_VERSION": "2.1.0"}), http.MethodGet, "/health", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var got HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, HealthyMessage, got.Message)
	assert.Equal(t, "production", got.Environment)
	assert.Equal(t, "2.1.0", got.Version)
	assert.Equal(t, "2026-10-19T16:45:30.123Z", got.Timestamp)
}

func TestHealth_JSONKeys(t *testing.T) {
	w := do(newTestHandler(t, nil), http.MethodGet, "/health", nil, "")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, k := range []string{"success", "message", "environment", "timestamp", "version"} {
		assert.Contains(t, raw, k)
	}
	assert.Len(t, raw, 5)
}

func TestUnknownRoute_JSON404(t *testing.T) {
	w := do(newTestHandler(t, nil), http.MethodGet, "/pedidos", nil, "")

	require.Equal(t, http.StatusNotFound, w.Code)
	var got ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(t, got.Success)
	assert.Contains(t, got.Error, "/pedidos")
	assert.Equal(t, w.Header().Get("X-Request-ID"), got.RequestID)
}

func TestWrongMethod_JSON405(t *testing.T) {
	w := do(newTestHandler(t, nil), http.MethodDelete, "/health", nil, "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestJSONBody_TooLarge(t *testing.T) {
	h := newTestHandler(t, map[string]string{"JSON_BODY_LIMIT": "16"})
	w := do(h, http.MethodPost, "/", map[string]string{"Content-Type": "application/json"}, `{"nome":"uma fila bem grande"}`)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	var got ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "request body too large", got.Error)
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t, nil)

	w := do(h, http.MethodGet, "/health", map[string]string{"Origin": "http://localhost:5173"}, "")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	pre := do(h, http.MethodOptions, "/health", map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": http.MethodGet,
	}, "")
	assert.Equal(t, http.StatusNoContent, pre.Code)
	assert.NotEmpty(t, pre.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	h := newTestHandler(t, map[string]string{"CORS_ORIGINS": "https://filazero.app"})

	allowed := do(h, http.MethodGet, "/", map[string]string{"Origin": "https://filazero.app"}, "")
	assert.Equal(t, "https://filazero.app", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := do(h, http.MethodGet, "/", map[string]string{"Origin": "https://evil.example"}, "")
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit_JSON429AndStats(t *testing.T) {
	h := newTestHandler(t, map[string]string{"RATE_ENABLED": "true", "RATE_RPS": "0.02"})

	require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/health", nil, "").Code)
	w := do(h, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Too Many Requests", got.Error)
}

func TestStats_ReportsCounters(t *testing.T) {
	h := newTestHandler(t, map[string]string{"RATE_ENABLED": "true", "TRUST_XFF": "true"})
	do(h, http.MethodGet, "/health", nil, "")
	do(h, http.MethodGet, "/", nil, "")

	w := do(h, http.MethodGet, "/stats", map[string]string{"X-Forwarded-For": "192.168.0.9"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var snap struct {
		Total   struct{ Allowed, Denied int64 }
		ByRoute map[string]struct{ Allowed, Denied int64 }
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.EqualValues(t, 1, snap.ByRoute["GET /health"].Allowed)
	assert.EqualValues(t, 1, snap.ByRoute["GET /"].Allowed)
}

func TestRateLimit_DisabledByConfig(t *testing.T) {
	h := newTestHandler(t, map[string]string{"RATE_ENABLED": "false", "RATE_RPS": "0.02"})
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/", nil, "").Code)
	}
}

func TestDefaults_HealthNeverLimited(t *testing.T) {
	h := newTestHandler(t, nil)
	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/health", nil, "").Code)
	}
}

func TestStats_UnmatchedPathsShareOneRoute(t *testing.T) {
	cfg := testConfig(t, map[string]string{"RATE_ENABLED": "true", "RATE_RPS": "1000", "RATE_BURST": "1000"})
	stats := infra.NewMemoryStatsStore()
	h := NewHandler(Options{
		Config:  cfg,
		Limiter: infra.NewStore(cfg.RateRPS, cfg.RateBurst),
		Stats:   stats,
	})

	for i := 0; i < 25; i++ {
		require.Equal(t, http.StatusNotFound, do(h, http.MethodGet, fmt.Sprintf("/a%d", i), nil, "").Code)
	}
	require.Equal(t, http.StatusMethodNotAllowed, do(h, http.MethodDelete, "/health", nil, "").Code)
	require.Equal(t, http.StatusOK, do(h, http.MethodHead, "/health", nil, "").Code)

	snap, err := stats.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Counters{
		ratelimit.UnmatchedRoute: {Allowed: 26},
		"HEAD /health":           {Allowed: 1},
	}, snap.ByRoute)
}

type failingStats struct{}

func (failingStats) Record(context.Context, domain.StatsEvent) error {
	return errors.New("redis down")
}

func TestStats_FailureIsLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cfg := testConfig(t, map[string]string{"RATE_ENABLED": "true"})
	h := NewHandler(Options{
		Config:  cfg,
		Logger:  zap.New(core),
		Limiter: infra.NewStore(cfg.RateRPS, cfg.RateBurst),
		Stats:   failingStats{},
	})

	require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/health", nil, "").Code)

	entries := logs.FilterMessage("ratelimit stats failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "redis down", entries[0].ContextMap()["error"])
}
