package domain

import "time"

// Key identifica o cliente limitado (IP, API key, usuário).
type Key string

// Limiter decide se uma ação é permitida agora.
// A infra usa token-bucket (golang.org/x/time/rate).
type Limiter interface {
	Allow() bool
}

// LimiterStore obtém um limiter por chave.
type LimiterStore interface {
	Get(Key) Limiter
}

// Request é o que a camada de aplicação precisa saber de uma requisição.
type Request struct {
	Key    Key
	Method string
	Path   string
	At     time.Time
}

type Decision struct {
	Allowed bool
	// RetryAfter vai para o header Retry-After quando bloqueia. Zero quando permitido.
	RetryAfter time.Duration
}
