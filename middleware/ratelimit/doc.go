// Package ratelimit fornece os middlewares net/http de rate limit e limite de
// concorrência usados pelos servidores do FilaZero (API e web).
//
// Camadas:
//
//   - domain: contratos e tipos (sem net/http)
//   - application: decisão allow/deny, estatística, acquire com timeout
//   - infra: token bucket, semáforo, contadores em memória/Redis
//   - ratelimit (este pacote): extração de chave, status/headers, GET /stats
//
// Fluxo:
//
//  1. Extrai a chave do cliente (header/XFF/IP)
//  2. Pede a decisão para a camada application
//  3. Se bloqueado, responde 429 (rate limit) ou 503 (concorrência)
//  4. Se permitido, chama o próximo handler
package ratelimit
