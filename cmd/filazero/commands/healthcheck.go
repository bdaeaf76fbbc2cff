package commands

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"filazero/api"

	"github.com/spf13/cobra"
)

func defaultHealthURL() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	return "http://localhost:" + port
}

func healthcheckCmd() *cobra.Command {
	var (
		rawURL  string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Consulta GET /health da API; sai com código 1 se não estiver saudável",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := url.Parse(rawURL)
			if err != nil || base.Scheme == "" || base.Host == "" {
				return fmt.Errorf("invalid --url %q", rawURL)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			res, err := api.NewClient(base).Health(ctx)
			if err != nil {
				return fmt.Errorf("healthcheck %s: %w", base, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%s)\n", res.Message, res.Timestamp)
			return nil
		},
	}
	cmd.Flags().StringVar(&rawURL, "url", defaultHealthURL(), "URL base da API")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "tempo máximo da consulta")
	return cmd
}
