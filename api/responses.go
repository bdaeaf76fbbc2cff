package api

import (
	"encoding/json"
	"net/http"
	"time"

	"filazero/middleware/requestlog"
)

// TimestampLayout é ISO-8601 em UTC com milissegundos.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const (
	StatusRunning  = "running"
	RootMessage    = "API FilaZero rodando"
	HealthyMessage = "Servidor funcionando"
)

type StatusResponse struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
	Status      string `json:"status"`
}

type HealthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde {success:false, error, requestId} com o status dado.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, ErrorResponse{
		Error:     msg,
		RequestID: requestlog.ID(r.Context()),
	})
}

// reject adapta WriteError para os middlewares de rate limit.
func reject(w http.ResponseWriter, r *http.Request, status int) {
	WriteError(w, r, status, "")
}
