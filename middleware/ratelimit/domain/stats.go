package domain

import (
	"context"
	"strings"
	"time"
)

// StatsEvent é um evento de decisão do rate limit.
//
// Cuidado com cardinalidade: Key e Path sem controle explodem o número de
// chaves no Redis.
type StatsEvent struct {
	Key     Key
	Allowed bool

	Method string
	Path   string

	At time.Time
}

// Route devolve "METHOD /path", ou "" quando ambos estão vazios.
func (ev StatsEvent) Route() string {
	return strings.TrimSpace(strings.TrimSpace(ev.Method) + " " + strings.TrimSpace(ev.Path))
}

// StatsStore persiste estatísticas. Erros são best-effort: nunca derrubam a requisição.
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}

type Counters struct {
	Allowed int64 `json:"allowed"`
	Denied  int64 `json:"denied"`
}

// StatsSnapshot é a fotografia servida em GET /stats.
type StatsSnapshot struct {
	Total   Counters            `json:"total"`
	ByRoute map[string]Counters `json:"byRoute"`
	ByKey   map[string]Counters `json:"byKey,omitempty"`
}

// StatsReader é implementado pelos stores que conseguem se descrever.
type StatsReader interface {
	Snapshot(ctx context.Context) (StatsSnapshot, error)
}
