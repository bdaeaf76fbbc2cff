package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return NewClient(u)
}

func TestClient_StatusAndHealth(t *testing.T) {
	c := newTestClient(t, newTestHandler(t, nil))

	st, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "running", st.Status)

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, h.Success)
	assert.Equal(t, "1.0.0", h.Version)
}

func TestClient_UnhealthyPayload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":false,"message":"banco fora"}`)
	}))

	_, err := c.Health(context.Background())
	require.ErrorIs(t, err, ErrUnhealthy)
	assert.Contains(t, err.Error(), "banco fora")
}

func TestClient_ErrorStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusServiceUnavailable, "manutenção")
	}))

	_, err := c.Health(context.Background())
	require.ErrorIs(t, err, ErrUnhealthy)
	assert.Contains(t, err.Error(), "503 manutenção")
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	u, _ := url.Parse(srv.URL)
	srv.Close()

	_, err := NewClient(u).Status(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnhealthy)
}
