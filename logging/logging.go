// Package logging monta o *zap.Logger dos binários do FilaZero.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New devolve JSON em produção e console colorido nos demais ambientes.
// verbose força o nível debug.
func New(env string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("env", env)), nil
}

// ErrorReporter adapta o logger para callbacks do tipo func(error).
func ErrorReporter(logger *zap.Logger, msg string) func(error) {
	return func(err error) {
		logger.Warn(msg, zap.Error(err))
	}
}
