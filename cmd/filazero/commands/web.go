package commands

import (
	"fmt"

	"filazero/config"
	"filazero/httpserver"
	"filazero/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func webCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Sobe o frontend (páginas, /env.json, ações e proxy /api)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Environment()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if err := initLogger(cfg.Env); err != nil {
				return err
			}

			h, err := web.NewHandler(web.Options{Config: cfg, Logger: logger})
			if err != nil {
				return err
			}

			logger.Info("web starting",
				zap.String("addr", cfg.Addr()),
				zap.String("app", cfg.AppName),
				zap.String("version", cfg.AppVersion),
				zap.String("apiUrl", cfg.APIURL),
				zap.String("locale", cfg.DefaultLocale),
				zap.String("currency", cfg.DefaultCurrency),
			)

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return httpserver.Run(ctx, httpserver.New(cfg.Addr(), h), logger)
		},
	}
}
