// Package domain define os contratos de rate limit, limite de concorrência e
// estatísticas usados pelos servidores HTTP do FilaZero.
//
// Não depende de net/http nem de implementações concretas.
package domain
