package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"filazero/api"
	"filazero/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestHealthcheck_OK(t *testing.T) {
	cfg, err := config.LoadAPIFrom(map[string]string{"RATE_ENABLED": "false"})
	require.NoError(t, err)
	srv := httptest.NewServer(api.NewHandler(api.Options{Config: cfg}))
	t.Cleanup(srv.Close)

	out, err := run(t, "healthcheck", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: "+api.HealthyMessage)
}

func TestHealthcheck_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	_, err := run(t, "healthcheck", "--url", srv.URL)
	require.Error(t, err)
}

func TestHealthcheck_InvalidURL(t *testing.T) {
	_, err := run(t, "healthcheck", "--url", "localhost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --url")
}

func TestUnknownCommand(t *testing.T) {
	_, err := run(t, "nope")
	require.Error(t, err)
}
