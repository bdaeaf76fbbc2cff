package ratelimit

import "strconv"

// Formatação numérica dos headers X-RateLimit-* sem passar por fmt.

func formatInt(v int) string { return strconv.Itoa(v) }

func formatFloat(v float64) string {
	// sem notação científica para valores comuns
	return strconv.FormatFloat(v, 'f', -1, 64)
}
