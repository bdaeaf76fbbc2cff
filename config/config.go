// Package config lê as variáveis de ambiente do FilaZero uma única vez e as
// expõe como structs somente leitura.
//
// Frontend corresponde às variáveis VITE_* do app web; API corresponde ao
// servidor JSON.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig marca erros de validação (valor presente mas inválido).
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// parseEnv preenche target a partir de vars; vars nil usa o ambiente do processo.
func parseEnv(target any, vars map[string]string) error {
	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
