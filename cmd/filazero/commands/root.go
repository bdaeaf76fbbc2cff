package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"filazero/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version é sobrescrita no build com -ldflags "-X filazero/cmd/filazero/commands.Version=...".
var Version = "dev"

var (
	verbose bool
	logger  *zap.Logger
)

func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "erro:", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "filazero",
		Short:         "FilaZero: backend JSON e servidor do frontend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "habilita logs de debug")

	root.AddCommand(apiCmd(), webCmd(), healthcheckCmd(), versionCmd())
	return root
}

// initLogger cria o logger global para o ambiente do comando.
func initLogger(env string) error {
	l, err := logging.New(env, verbose)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// signalContext encerra com SIGINT/SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Imprime a versão",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
