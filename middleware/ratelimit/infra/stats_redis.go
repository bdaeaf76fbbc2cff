package infra

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"filazero/middleware/ratelimit/domain"

	"github.com/redis/go-redis/v9"
)

const (
	fieldAllowed = "allowed"
	fieldDenied  = "denied"
)

// RedisStatsStore grava os contadores em hashes do Redis:
//
//	{prefix}:total              allowed/denied (cumulativo, sem TTL)
//	{prefix}:minute:YYYYMMDDhhmm allowed/denied por minuto
//	{prefix}:route              "GET /health:allowed" ...
//	{prefix}:key:{key}          allowed/denied por cliente (opcional)
type RedisStatsStore struct {
	rdb redis.UniversalClient

	prefix string
	// ttl vale só para as séries por minuto e por chave.
	ttl time.Duration

	bucket string // "minute" (padrão) ou "none"

	trackKeys bool
}

var (
	_ domain.StatsStore  = (*RedisStatsStore)(nil)
	_ domain.StatsReader = (*RedisStatsStore)(nil)
)

type RedisStatsOption func(*RedisStatsStore)

func WithStatsPrefix(prefix string) RedisStatsOption {
	return func(s *RedisStatsStore) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

func WithStatsTTL(d time.Duration) RedisStatsOption {
	return func(s *RedisStatsStore) { s.ttl = d }
}

func WithStatsBucket(bucket string) RedisStatsOption {
	return func(s *RedisStatsStore) { s.bucket = strings.ToLower(strings.TrimSpace(bucket)) }
}

func WithStatsTrackKeys(track bool) RedisStatsOption {
	return func(s *RedisStatsStore) { s.trackKeys = track }
}

func NewRedisStatsStore(rdb redis.UniversalClient, opts ...RedisStatsOption) *RedisStatsStore {
	s := &RedisStatsStore{
		rdb:    rdb,
		prefix: "filazero:ratelimit",
		ttl:    24 * time.Hour,
		bucket: "minute",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStatsStore) Record(ctx context.Context, ev domain.StatsEvent) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	field := fieldDenied
	if ev.Allowed {
		field = fieldAllowed
	}

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.prefix+":total", field, 1)

	if s.bucket == "minute" {
		bucketKey := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
		pipe.HIncrBy(ctx, bucketKey, field, 1)
		if s.ttl > 0 {
			pipe.Expire(ctx, bucketKey, s.ttl)
		}
	}

	if route := ev.Route(); route != "" {
		pipe.HIncrBy(ctx, s.prefix+":route", route+":"+field, 1)
	}

	if s.trackKeys {
		if k := strings.TrimSpace(string(ev.Key)); k != "" {
			keyKey := s.prefix + ":key:" + k
			pipe.HIncrBy(ctx, keyKey, field, 1)
			if s.ttl > 0 {
				pipe.Expire(ctx, keyKey, s.ttl)
			}
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record ratelimit stats: %w", err)
	}
	return nil
}

func (s *RedisStatsStore) Snapshot(ctx context.Context) (domain.StatsSnapshot, error) {
	snap := domain.StatsSnapshot{ByRoute: make(map[string]domain.Counters)}

	total, err := s.rdb.HGetAll(ctx, s.prefix+":total").Result()
	if err != nil {
		return domain.StatsSnapshot{}, fmt.Errorf("read total stats: %w", err)
	}
	snap.Total = countersFrom(total)

	routes, err := s.rdb.HGetAll(ctx, s.prefix+":route").Result()
	if err != nil {
		return domain.StatsSnapshot{}, fmt.Errorf("read route stats: %w", err)
	}
	for f, v := range routes {
		// o campo é "METHOD /path:allowed"; o path pode ter ':'
		i := strings.LastIndex(f, ":")
		if i < 0 {
			continue
		}
		route, field := f[:i], f[i+1:]
		c := snap.ByRoute[route]
		add(&c, field, v)
		snap.ByRoute[route] = c
	}

	if !s.trackKeys {
		return snap, nil
	}
	snap.ByKey = make(map[string]domain.Counters)
	keyPrefix := s.prefix + ":key:"
	iter := s.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		vals, err := s.rdb.HGetAll(ctx, iter.Val()).Result()
		if err != nil {
			return domain.StatsSnapshot{}, fmt.Errorf("read key stats: %w", err)
		}
		snap.ByKey[strings.TrimPrefix(iter.Val(), keyPrefix)] = countersFrom(vals)
	}
	if err := iter.Err(); err != nil {
		return domain.StatsSnapshot{}, fmt.Errorf("scan key stats: %w", err)
	}
	return snap, nil
}

func countersFrom(h map[string]string) domain.Counters {
	var c domain.Counters
	for f, v := range h {
		add(&c, f, v)
	}
	return c
}

func add(c *domain.Counters, field, raw string) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return
	}
	switch field {
	case fieldAllowed:
		c.Allowed += n
	case fieldDenied:
		c.Denied += n
	}
}
