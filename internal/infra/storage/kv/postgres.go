package kv

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

var postgresDialect = dialect{
	name:    "postgres",
	builder: psqlbuilder.Builder(),
	schema: `CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      BYTEA  NOT NULL,
	updated_at BIGINT NOT NULL
)`,
}

// PostgresConfig параметры пула соединений
type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// OpenPostgres подключается к PostgreSQL
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*SQLStore, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: postgres open: %v", ErrConnection, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: postgres ping: %v", ErrConnection, err)
	}

	return newSQLStore(ctx, db, postgresDialect)
}
