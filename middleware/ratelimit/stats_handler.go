package ratelimit

import (
	"encoding/json"
	"net/http"

	"filazero/middleware/ratelimit/domain"
)

// StatsHandler serve a fotografia dos contadores em JSON.
func StatsHandler(reader domain.StatsReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap, err := reader.Snapshot(r.Context())
		if err != nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		if snap.ByRoute == nil {
			snap.ByRoute = map[string]domain.Counters{}
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(snap)
	})
}
