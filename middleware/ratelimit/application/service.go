package application

import (
	"context"
	"time"

	"filazero/middleware/ratelimit/domain"
)

// Service decide se uma requisição passa e registra a decisão nas estatísticas.
//
// Não sabe nada de HTTP (headers/status), apenas devolve a decisão.
type Service struct {
	Store      domain.LimiterStore
	Stats      domain.StatsStore
	RetryAfter time.Duration
	// OnStatsError recebe falhas de gravação das estatísticas. Pode ser nil.
	OnStatsError func(error)
}

func (s Service) Decide(ctx context.Context, req domain.Request) domain.Decision {
	dec := s.decide(req.Key)
	if s.Stats == nil {
		return dec
	}

	at := req.At
	if at.IsZero() {
		at = time.Now()
	}
	err := s.Stats.Record(ctx, domain.StatsEvent{
		Key:     req.Key,
		Allowed: dec.Allowed,
		Method:  req.Method,
		Path:    req.Path,
		At:      at,
	})
	if err != nil && s.OnStatsError != nil {
		s.OnStatsError(err)
	}
	return dec
}

func (s Service) decide(key domain.Key) domain.Decision {
	if s.Store == nil {
		return domain.Decision{Allowed: true}
	}
	if s.RetryAfter <= 0 {
		s.RetryAfter = 1 * time.Second
	}

	lim := s.Store.Get(key)
	if lim == nil || lim.Allow() {
		return domain.Decision{Allowed: true}
	}
	return domain.Decision{Allowed: false, RetryAfter: s.RetryAfter}
}
