package api

import (
	"net/http"
	"time"

	"filazero/config"
	"filazero/logging"
	"filazero/middleware/jsonbody"
	"filazero/middleware/ratelimit"
	"filazero/middleware/ratelimit/domain"
	"filazero/middleware/requestlog"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Options struct {
	Config config.API
	Logger *zap.Logger
	// Limiter nil desliga o rate limit, mesmo com RATE_ENABLED=true.
	Limiter domain.LimiterStore
	Stats   domain.StatsStore
	// StatsReader habilita GET /stats.
	StatsReader domain.StatsReader
	Now         func() time.Time
}

// NewRouter registra só as rotas, sem middlewares.
func NewRouter(opts Options) *mux.Router {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	h := handlers{env: opts.Config.Env, version: opts.Config.Version, now: opts.Now}

	r := mux.NewRouter()
	r.HandleFunc("/", h.root).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/health", h.health).Methods(http.MethodGet, http.MethodHead)
	if opts.StatsReader != nil {
		r.Handle("/stats", ratelimit.StatsHandler(opts.StatsReader)).Methods(http.MethodGet)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, "rota não encontrada: "+r.Method+" "+r.URL.Path)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, "")
	})
	return r
}

// NewHandler monta o backend completo: rotas + middlewares na ordem
// request ID, access log, recover, CORS, concorrência, rate limit, JSON.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := opts.Config

	router := NewRouter(opts)
	h := http.Handler(router)
	h = jsonbody.Middleware(jsonbody.Options{
		Limit: cfg.JSONBodyLimit,
		Reject: func(w http.ResponseWriter, r *http.Request, status int, err error) {
			WriteError(w, r, status, err.Error())
		},
	})(h)
	if cfg.RateEnabled && opts.Limiter != nil {
		h = ratelimit.Middleware(ratelimit.Options{
			Store:               opts.Limiter,
			Stats:               opts.Stats,
			KeyHeader:           cfg.RateKeyHeader,
			TrustXForwardedFor:  cfg.TrustXFF,
			RetryAfter:          cfg.RetryAfter,
			AddRateLimitHeaders: cfg.AddHeaders,
			OnStatsError:        logging.ErrorReporter(logger, "ratelimit stats failed"),
			Reject:              reject,
			RouteFn:             routeTemplate(router),
		})(h)
	}
	h = ratelimit.ConcurrencyMiddleware(ratelimit.ConcurrencyOptions{
		Max:            cfg.ConcurrencyMax,
		AcquireTimeout: cfg.ConcurrencyTimeout,
		Reject:         reject,
	})(h)
	h = newCORS(cfg.CORSOrigins).Handler(h)
	h = requestlog.Recover(logger, func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusInternalServerError, "")
	})(h)
	h = requestlog.AccessLog(logger)(h)
	return requestlog.RequestID(h)
}

// routeTemplate grava nas estatísticas o template da rota ("GET /health");
// 404 e 405 caem todos em ratelimit.UnmatchedRoute.
func routeTemplate(router *mux.Router) ratelimit.RouteFunc {
	return func(r *http.Request) (string, string) {
		var match mux.RouteMatch
		if !router.Match(r, &match) || match.MatchErr != nil || match.Route == nil {
			return "", ratelimit.UnmatchedRoute
		}
		tmpl, err := match.Route.GetPathTemplate()
		if err != nil {
			return "", ratelimit.UnmatchedRoute
		}
		return r.Method, tmpl
	}
}

// newCORS libera qualquer origem por padrão, com os métodos usuais.
func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut,
			http.MethodPatch, http.MethodPost, http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestlog.Header, "Retry-After"},
	})
}
