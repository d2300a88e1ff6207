package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Dialect selects placeholder syntax for SQLRepository.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DBTX is the subset of *sql.DB and *sql.Tx used by SQLRepository.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLRepository stores users in a SQL database. Queries are written with
// '?' placeholders and rebound for Postgres.
type SQLRepository struct {
	db      DBTX
	dialect Dialect
}

// NewSQLRepository returns a repository over db.
func NewSQLRepository(db DBTX, dialect Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(`SELECT id, name, email FROM users ORDER BY seq`))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *SQLRepository) Get(ctx context.Context, id string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, r.rebind(`SELECT id, name, email FROM users WHERE id = ?`), id).
		Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *SQLRepository) Create(ctx context.Context, in CreateUser) (User, error) {
	u := User{ID: uuid.NewString(), Name: in.Name, Email: in.Email}
	_, err := r.db.ExecContext(ctx, r.rebind(`INSERT INTO users (id, name, email) VALUES (?, ?, ?)`),
		u.ID, u.Name, u.Email)
	if err != nil {
		return User{}, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *SQLRepository) Update(ctx context.Context, id string, in UpdateUser) (User, error) {
	query := `UPDATE users SET name = COALESCE(?, name), email = COALESCE(?, email)
		WHERE id = ?
		RETURNING id, name, email`

	var u User
	err := r.db.QueryRowContext(ctx, r.rebind(query), nullable(in.Name), nullable(in.Email), id).
		Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// rebind rewrites '?' placeholders to $1, $2... for Postgres.
func (r *SQLRepository) rebind(query string) string {
	if r.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
