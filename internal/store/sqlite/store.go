// Package sqlite implements store.Store with bun on SQLite. It backs local
// development and the test suites.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"event-management-api/internal/store"
)

type Store struct {
	db *bun.DB
}

var _ store.Store = (*Store)(nil)

// Open opens dsn (a file path, `file:` URI or ":memory:") and creates the
// schema if missing. The handle is pinned to one connection: SQLite
// serializes writers anyway, the foreign_keys pragma is per connection, and
// an in-memory database lives only as long as its connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlite dsn is required")
	}
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	s := &Store{db: db}
	if err := s.CreateSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// OpenMemory returns a private in-memory store.
func OpenMemory(ctx context.Context) (*Store, error) {
	return Open(ctx, ":memory:")
}

// DB exposes the bun handle, e.g. to attach query hooks.
func (s *Store) DB() *bun.DB { return s.db }

func (s *Store) CreateSchema(ctx context.Context) error {
	tables := []struct {
		model any
		fks   []string
	}{
		{model: (*userRow)(nil)},
		{model: (*sessionRow)(nil), fks: []string{
			`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
		}},
		{model: (*eventRow)(nil), fks: []string{
			`("created_by") REFERENCES "users" ("id") ON DELETE SET NULL`,
		}},
		{model: (*vendorRow)(nil)},
		{model: (*attendeeRow)(nil)},
		{model: (*scheduleRow)(nil), fks: []string{
			`("event_id") REFERENCES "events" ("id") ON DELETE CASCADE`,
		}},
	}
	for _, t := range tables {
		q := s.db.NewCreateTable().Model(t.model).IfNotExists()
		for _, fk := range t.fks {
			q = q.ForeignKey(fk)
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("create table %T: %w", t.model, err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %s", store.ErrConflict, msg)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %s", store.ErrInvalidReference, msg)
	}
	return err
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
