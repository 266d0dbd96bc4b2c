// Command catalogctl runs the catalog batch jobs: schema migration, seeding
// and search index synchronisation.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hongminglow/catalog-be/internal/config"
	"github.com/hongminglow/catalog-be/internal/logger"
	"github.com/hongminglow/catalog-be/internal/storage/postgres"
)

// app is the state shared by every subcommand.
type app struct {
	cfg config.Config
	log zerolog.Logger
	out io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Catalog maintenance jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				a.log = logger.NewWithWriter(a.out, "info", "json")
				return a.fail(err, "load config")
			}
			a.cfg = cfg
			a.log = logger.NewWithWriter(a.out, cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}
	root.AddCommand(a.migrateCmd(), a.seedCmd(), a.indexCmd())
	return root
}

func (a *app) openStore(ctx context.Context, migrate bool) (*postgres.Store, error) {
	return postgres.NewStore(ctx, postgres.Options{
		DatabaseURL: a.cfg.DatabaseURL,
		MaxConns:    a.cfg.DBMaxConns,
		Migrate:     migrate,
		TraceSQL:    a.log.GetLevel() <= zerolog.TraceLevel,
		Logger:      a.log,
	})
}

// fail logs err and hands it back so cobra exits non-zero.
func (a *app) fail(err error, msg string) error {
	a.log.Error().Err(err).Msg(msg)
	return err
}
