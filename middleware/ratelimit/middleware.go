package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"time"

	"filazero/middleware/ratelimit/application"
	"filazero/middleware/ratelimit/domain"
)

type KeyFunc func(r *http.Request) string

// UnmatchedRoute agrupa nas estatísticas os paths que não casaram com rota.
const UnmatchedRoute = "*"

// RouteFunc devolve o método e o path gravados nas estatísticas. Deve
// devolver um conjunto fechado (templates de rota), nunca o path bruto.
type RouteFunc func(r *http.Request) (method, path string)

type Options struct {
	Store               domain.LimiterStore
	Stats               domain.StatsStore
	KeyFn               KeyFunc
	KeyHeader           string
	TrustXForwardedFor  bool
	RejectStatus        int
	RetryAfter          time.Duration
	AddRateLimitHeaders bool
	// OnStatsError recebe falhas do Stats; a requisição segue normalmente.
	OnStatsError func(error)
	Reject       func(w http.ResponseWriter, r *http.Request, status int)
	// RouteFn nil grava r.URL.Path como veio.
	RouteFn RouteFunc
}

type rateInfo interface {
	RPS() float64
	Burst() int
	Remaining(domain.Key) int
}

func DefaultKeyFunc(keyHeader string, trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if keyHeader != "" {
			if v := strings.TrimSpace(r.Header.Get(keyHeader)); v != "" {
				return v
			}
		}

		if trustXFF {
			// primeiro IP do X-Forwarded-For é o cliente original
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
		}

		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}

func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.RetryAfter == 0 {
		opts.RetryAfter = 1 * time.Second
	}
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc(opts.KeyHeader, opts.TrustXForwardedFor)
	}
	if opts.Reject == nil {
		opts.Reject = plainReject
	}

	svc := application.Service{
		Store:        opts.Store,
		Stats:        opts.Stats,
		RetryAfter:   opts.RetryAfter,
		OnStatsError: opts.OnStatsError,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := domain.Key(opts.KeyFn(r))
			method, path := r.Method, r.URL.Path
			if opts.RouteFn != nil {
				method, path = opts.RouteFn(r)
			}

			dec := svc.Decide(r.Context(), domain.Request{
				Key:    key,
				Method: method,
				Path:   path,
				At:     time.Now(),
			})

			if opts.AddRateLimitHeaders {
				w.Header().Set("X-RateLimit-Key", string(key))
				if ri, ok := opts.Store.(rateInfo); ok {
					w.Header().Set("X-RateLimit-RPS", formatFloat(ri.RPS()))
					w.Header().Set("X-RateLimit-Burst", formatInt(ri.Burst()))
					w.Header().Set("X-RateLimit-Remaining", formatInt(ri.Remaining(key)))
				}
			}

			if !dec.Allowed {
				w.Header().Set("Retry-After", formatInt(int(dec.RetryAfter.Seconds())))
				opts.Reject(w, r, opts.RejectStatus)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
