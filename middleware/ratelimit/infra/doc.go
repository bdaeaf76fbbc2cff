// Package infra implementa os contratos de domain:
//
//   - Store: token bucket por chave com golang.org/x/time/rate
//   - ChanPool: semáforo para limite de concorrência
//   - MemoryStatsStore / RedisStatsStore: contadores de decisões
package infra
