package api

import (
	"net/http"
	"time"
)

type handlers struct {
	env     string
	version string
	now     func() time.Time
}

func (h handlers) root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Message:     RootMessage,
		Environment: h.env,
		Timestamp:   timestamp(h.now()),
		Status:      StatusRunning,
	})
}

func (h handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Success:     true,
		Message:     HealthyMessage,
		Environment: h.env,
		Timestamp:   timestamp(h.now()),
		Version:     h.version,
	})
}
