package infra

import (
	"context"
	"maps"
	"sync"

	"filazero/middleware/ratelimit/domain"
)

// DefaultMaxEntries limita rotas e chaves distintas de um MemoryStatsStore.
const DefaultMaxEntries = 1000

// OverflowEntry recebe os contadores de rotas ou chaves novas depois que o
// limite é atingido.
const OverflowEntry = "(outros)"

// MemoryStatsStore guarda os contadores em memória, sem expiração.
// É o padrão quando o Redis não está configurado.
type MemoryStatsStore struct {
	mu      sync.Mutex
	total   domain.Counters
	byRoute map[string]domain.Counters
	byKey   map[string]domain.Counters

	trackKeys  bool
	maxEntries int
}

var (
	_ domain.StatsStore  = (*MemoryStatsStore)(nil)
	_ domain.StatsReader = (*MemoryStatsStore)(nil)
)

type MemoryStatsOption func(*MemoryStatsStore)

func WithTrackKeys(track bool) MemoryStatsOption {
	return func(s *MemoryStatsStore) { s.trackKeys = track }
}

// WithMaxEntries troca DefaultMaxEntries; n <= 0 mantém o padrão.
func WithMaxEntries(n int) MemoryStatsOption {
	return func(s *MemoryStatsStore) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

func NewMemoryStatsStore(opts ...MemoryStatsOption) *MemoryStatsStore {
	s := &MemoryStatsStore{
		byRoute:    make(map[string]domain.Counters),
		byKey:      make(map[string]domain.Counters),
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStatsStore) Record(_ context.Context, ev domain.StatsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bump(&s.total, ev.Allowed)
	if route := ev.Route(); route != "" {
		s.bumpEntry(s.byRoute, route, ev.Allowed)
	}
	if s.trackKeys && ev.Key != "" {
		s.bumpEntry(s.byKey, string(ev.Key), ev.Allowed)
	}
	return nil
}

// bumpEntry incrementa m[name]; nomes novos além do limite vão para OverflowEntry.
func (s *MemoryStatsStore) bumpEntry(m map[string]domain.Counters, name string, allowed bool) {
	if _, ok := m[name]; !ok && len(m) >= s.maxEntries {
		name = OverflowEntry
	}
	c := m[name]
	bump(&c, allowed)
	m[name] = c
}

func (s *MemoryStatsStore) Snapshot(context.Context) (domain.StatsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.StatsSnapshot{
		Total:   s.total,
		ByRoute: maps.Clone(s.byRoute),
	}
	if s.trackKeys {
		snap.ByKey = maps.Clone(s.byKey)
	}
	return snap, nil
}

func bump(c *domain.Counters, allowed bool) {
	if allowed {
		c.Allowed++
		return
	}
	c.Denied++
}
