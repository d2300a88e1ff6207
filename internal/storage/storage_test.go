package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"

	apperrors "github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/users"
)

func TestOpenMemory(t *testing.T) {
	store, err := Open(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer store.Close()

	if _, ok := store.Users.(*users.MemoryRepository); !ok {
		t.Fatalf("Users = %T, want *users.MemoryRepository", store.Users)
	}
	list, _ := store.Users.List(context.Background())
	if len(list) != 1 || list[0].Name != "Alice" {
		t.Fatalf("memory store should be seeded, got %+v", list)
	}
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate on memory should be a no-op, got %v", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "mongo"})
	var e *apperrors.Error
	if !errors.As(err, &e) || e.Code != apperrors.CodeStorageDriver {
		t.Fatalf("expected storage driver error, got %v", err)
	}
}

func TestOpenSQLite(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	mock.ExpectPing()

	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		if driver != "sqlite" || dsn != "file:test.db" {
			t.Errorf("sqlOpen(%q, %q)", driver, dsn)
		}
		return db, nil
	}
	defer func() { sqlOpen = orig }()

	store, err := Open(context.Background(), Options{Driver: DriverSQLite, DSN: "file:test.db"})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if _, ok := store.Users.(*users.SQLRepository); !ok {
		t.Fatalf("Users = %T, want *users.SQLRepository", store.Users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMigrateUsesDriverDirectory(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	var gotDir string
	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}
	defer func() { gooseUpContext = orig }()

	store := &Store{DB: db, driver: DriverPostgres}
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate error: %v", err)
	}
	if gotDir != "migrations/postgres" {
		t.Fatalf("dir = %q, want migrations/postgres", gotDir)
	}
}

func TestMigrateWrapsFailure(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	err := (&Store{DB: db, driver: DriverSQLite}).Migrate(context.Background())
	var e *apperrors.Error
	if !errors.As(err, &e) || e.Code != apperrors.CodeMigrationFailed {
		t.Fatalf("expected migration error, got %v", err)
	}
}
