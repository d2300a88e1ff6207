// Package storage opens the users repository selected by configuration and
// runs its schema migrations.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	apperrors "github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/users"
)

//go:embed migrations
var migrations embed.FS

// Drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options selects and configures the backend.
type Options struct {
	Driver string
	DSN    string
	Logger *slog.Logger
}

// Store is an opened users repository plus the database handle behind it,
// if any.
type Store struct {
	Users users.Repository
	DB    *sql.DB

	driver string
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// Open returns the store for opts. The memory driver is seeded with the
// demo record. SQL drivers ping the database before returning.
func Open(ctx context.Context, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch opts.Driver {
	case "", DriverMemory:
		logger.Info("using in-memory users repository")
		return &Store{Users: users.NewMemoryRepository(users.DefaultSeed()...), driver: DriverMemory}, nil
	case DriverPostgres, DriverSQLite:
	default:
		return nil, apperrors.New(apperrors.CodeStorageDriver).WithDetail(fmt.Sprintf("unknown driver %q", opts.Driver))
	}

	db, err := sqlOpen(sqlDriverName(opts.Driver), opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", opts.Driver, err)
	}

	logger.Info("using sql users repository", "driver", opts.Driver)
	return &Store{
		Users:  users.NewSQLRepository(db, dialect(opts.Driver)),
		DB:     db,
		driver: opts.Driver,
	}, nil
}

// Migrate applies the embedded migrations for the store's driver. It is a
// no-op for the memory driver.
func (s *Store) Migrate(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(gooseDialect(s.driver)); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, s.DB, "migrations/"+s.driver); err != nil {
		return apperrors.New(apperrors.CodeMigrationFailed).Wrap(err)
	}
	return nil
}

func sqlDriverName(driver string) string {
	if driver == DriverPostgres {
		return "pgx"
	}
	return "sqlite"
}

func gooseDialect(driver string) string {
	if driver == DriverPostgres {
		return "pgx"
	}
	return "sqlite3"
}

func dialect(driver string) users.Dialect {
	if driver == DriverPostgres {
		return users.DialectPostgres
	}
	return users.DialectSQLite
}
