package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies pending embedded migrations.
func (s *Store) Migrate(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("apply migrations: store has no connection pool")
	}
	fsys, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, stdlib.OpenDBFromPool(s.pool), fsys)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, res := range results {
		s.log.Info().Int64("version", res.Source.Version).Dur("took", res.Duration).Msg("applied migration")
	}
	return nil
}
