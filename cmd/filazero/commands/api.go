package commands

import (
	"context"
	"fmt"
	"time"

	"filazero/api"
	"filazero/config"
	"filazero/httpserver"
	"filazero/middleware/ratelimit/domain"
	"filazero/middleware/ratelimit/infra"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func apiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Sobe o backend JSON (GET / e GET /health)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadAPI()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if err := initLogger(cfg.Env); err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return runAPI(ctx, cfg, logger)
		},
	}
}

func runAPI(ctx context.Context, cfg config.API, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := infra.NewStore(cfg.RateRPS, cfg.RateBurst)
	janitorDone := store.StartJanitor(ctx)

	stats, reader, closeStats, err := openStats(ctx, cfg.Stats)
	if err != nil {
		return err
	}
	defer closeStats()

	h := api.NewHandler(api.Options{
		Config:      cfg,
		Logger:      logger,
		Limiter:     store,
		Stats:       stats,
		StatsReader: reader,
	})

	logger.Info("api starting",
		zap.String("addr", cfg.Addr()),
		zap.String("version", cfg.Version),
		zap.Strings("corsOrigins", cfg.CORSOrigins),
	)
	logger.Info("rate limit",
		zap.Bool("enabled", cfg.RateEnabled),
		zap.Float64("rps", cfg.RateRPS),
		zap.Int("burst", cfg.RateBurst),
		zap.String("keyHeader", cfg.RateKeyHeader),
		zap.Bool("trustXFF", cfg.TrustXFF),
		zap.Int("concurrencyMax", cfg.ConcurrencyMax),
		zap.Duration("concurrencyTimeout", cfg.ConcurrencyTimeout),
	)
	logger.Info("rate stats",
		zap.Bool("redis", cfg.Stats.Enabled),
		zap.String("redisAddr", cfg.Stats.RedisAddr),
		zap.String("bucket", cfg.Stats.Bucket),
		zap.Duration("ttl", cfg.Stats.TTL),
		zap.Bool("trackKeys", cfg.Stats.TrackKeys),
	)

	err = httpserver.Run(ctx, httpserver.New(cfg.Addr(), h), logger)
	cancel()
	<-janitorDone
	return err
}

// openStats usa Redis quando RATE_STATS_ENABLED=true e memória caso contrário.
func openStats(ctx context.Context, cfg config.RateStats) (domain.StatsStore, domain.StatsReader, func(), error) {
	if !cfg.Enabled {
		mem := infra.NewMemoryStatsStore(infra.WithTrackKeys(cfg.TrackKeys))
		return mem, mem, func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, nil, fmt.Errorf("redis stats ping error: %w", err)
	}

	rs := infra.NewRedisStatsStore(
		rdb,
		infra.WithStatsPrefix(cfg.Prefix),
		infra.WithStatsTTL(cfg.TTL),
		infra.WithStatsBucket(cfg.Bucket),
		infra.WithStatsTrackKeys(cfg.TrackKeys),
	)
	return rs, rs, func() { _ = rdb.Close() }, nil
}
