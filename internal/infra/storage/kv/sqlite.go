package kv

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

var sqliteDialect = dialect{
	name:    "sqlite",
	builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	schema: `CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      BLOB    NOT NULL,
	updated_at INTEGER NOT NULL
)`,
}

// OpenSQLite открывает (или создает) файл базы SQLite
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create directory %s: %v", ErrIO, dir, err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite open %s: %v", ErrConnection, path, err)
	}
	// SQLite допускает одного писателя
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: sqlite ping %s: %v", ErrConnection, path, err)
	}

	return newSQLStore(ctx, db, sqliteDialect)
}
