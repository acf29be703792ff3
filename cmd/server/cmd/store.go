package cmd

import (
	"context"
	"fmt"

	"event-management-api/internal/config"
	"event-management-api/internal/store"
	"event-management-api/internal/store/postgres"
	"event-management-api/internal/store/sqlite"
)

// openStore connects to the configured backend. Postgres is migrated to the
// latest schema first; SQLite creates missing tables on open.
func openStore(ctx context.Context, db config.DatabaseConfig) (store.Store, error) {
	switch db.Driver {
	case config.DriverPostgres:
		if err := postgres.MigrateUp(db.URL); err != nil {
			return nil, err
		}
		return postgres.Open(ctx, db.URL, db.MaxConns)
	case config.DriverSQLite:
		return sqlite.Open(ctx, db.URL)
	}
	return nil, fmt.Errorf("unknown database driver %q", db.Driver)
}
