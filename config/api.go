package config

import (
	"strconv"
	"strings"
	"time"
)

const (
	defaultRateRPS   = 10
	defaultRateBurst = 20
)

// API é a configuração do servidor JSON.
type API struct {
	Port          int      `env:"PORT" envDefault:"3001"`
	Env           string   `env:"NODE_ENV" envDefault:"development"`
	Version       string   `env:"APP_VERSION" envDefault:"1.0.0"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	JSONBodyLimit int64    `env:"JSON_BODY_LIMIT" envDefault:"102400"`

	// Desligado por padrão: GET / e GET /health respondem sempre 200.
	RateEnabled bool `env:"RATE_ENABLED" envDefault:"false"`
	// RateRPS e RateBurst zerados significam "não informado".
	RateRPS            float64       `env:"RATE_RPS"`
	RateBurst          int           `env:"RATE_BURST"`
	RateKeyHeader      string        `env:"RATE_KEY_HEADER"`
	TrustXFF           bool          `env:"TRUST_XFF" envDefault:"false"`
	RetryAfter         time.Duration `env:"RETRY_AFTER" envDefault:"1s"`
	AddHeaders         bool          `env:"ADD_RATELIMIT_HEADERS" envDefault:"false"`
	ConcurrencyMax     int           `env:"CONCURRENCY_MAX" envDefault:"100"`
	ConcurrencyTimeout time.Duration `env:"CONCURRENCY_TIMEOUT" envDefault:"0s"`

	Stats RateStats `envPrefix:"RATE_STATS_"`
}

// RateStats controla a gravação das estatísticas do rate limit no Redis.
type RateStats struct {
	Enabled       bool          `env:"ENABLED" envDefault:"false"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	Prefix        string        `env:"PREFIX" envDefault:"filazero:ratelimit"`
	TTL           time.Duration `env:"TTL" envDefault:"24h"`
	Bucket        string        `env:"BUCKET" envDefault:"minute"`
	TrackKeys     bool          `env:"TRACK_KEYS" envDefault:"false"`
}

// LoadAPI lê a configuração do ambiente do processo.
func LoadAPI() (API, error) { return LoadAPIFrom(nil) }

// LoadAPIFrom lê a configuração de vars (usado em testes).
func LoadAPIFrom(vars map[string]string) (API, error) {
	var cfg API
	if err := parseEnv(&cfg, vars); err != nil {
		return API{}, err
	}

	// IMPORTANTE: o burst libera uma rajada inicial. Com RPS muito baixo
	// (ex: 0.02) o padrão 20 dá a impressão de que o limiter não funciona.
	if cfg.RateBurst == 0 {
		cfg.RateBurst = defaultRateBurst
		if cfg.RateRPS > 0 && cfg.RateRPS < 1 {
			cfg.RateBurst = 1
		}
	}
	if cfg.RateRPS == 0 {
		cfg.RateRPS = defaultRateRPS
	}

	if err := cfg.validate(); err != nil {
		return API{}, err
	}
	return cfg, nil
}

func (c API) validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return invalid("PORT must be between 1 and 65535, got %d", c.Port)
	case c.JSONBodyLimit <= 0:
		return invalid("JSON_BODY_LIMIT must be > 0")
	case c.RateRPS < 0:
		return invalid("RATE_RPS must be > 0")
	case c.RateBurst < 0:
		return invalid("RATE_BURST must be > 0")
	case c.ConcurrencyMax < 0:
		return invalid("CONCURRENCY_MAX must be >= 0")
	case c.Stats.Enabled && strings.TrimSpace(c.Stats.RedisAddr) == "":
		return invalid("RATE_STATS_REDIS_ADDR is required when RATE_STATS_ENABLED=true")
	}
	return nil
}

// Addr é o endereço de escuta (":3001").
func (c API) Addr() string { return ":" + strconv.Itoa(c.Port) }
