package postgres

import (
	"context"
	"fmt"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/hongminglow/catalog-be/internal/storage"
)

// Ensure Store satisfies the storage interfaces at compile time.
var (
	_ storage.UserStore    = (*Store)(nil)
	_ storage.CatalogStore = (*Store)(nil)
	_ storage.Pinger       = (*Store)(nil)
)

// dbtx is the subset of *pgxpool.Pool the queries use.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error)
	Ping(ctx context.Context) error
}

// Options configures NewStore.
type Options struct {
	DatabaseURL string
	MaxConns    int32
	// Migrate applies the embedded migrations before returning.
	Migrate bool
	// TraceSQL logs every statement at debug level.
	TraceSQL bool
	Logger   zerolog.Logger
}

// Store provides Postgres-backed persistence for users and the catalog.
type Store struct {
	db   dbtx
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewStore connects a pool, verifies it and optionally runs migrations.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.TraceSQL {
		cfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(opts.Logger),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: pool, pool: pool, log: opts.Logger}
	if opts.Migrate {
		if err := s.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
	}

	s.log.Info().Int32("max_conns", cfg.MaxConns).Msg("connected to the database")
	return s, nil
}

// newWithDB wraps an existing connection, used by tests.
func newWithDB(db dbtx) *Store {
	return &Store{db: db, log: zerolog.Nop()}
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
