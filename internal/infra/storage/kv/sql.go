package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

const tableName = "kv_store"

// upsertSuffix одинаково поддерживается SQLite и PostgreSQL
var upsertSuffix = psqlbuilder.UpsertSuffix("key", "value", "updated_at")

// dialect различия SQL диалектов
type dialect struct {
	name    string
	builder squirrel.StatementBuilderType
	schema  string
}

// SQLStore хранилище поверх таблицы kv_store
type SQLStore struct {
	db      *sql.DB
	exec    DBExecutor
	dialect dialect
	now     func() time.Time
}

func newSQLStore(ctx context.Context, db *sql.DB, d dialect) (*SQLStore, error) {
	s := &SQLStore{
		db:      db,
		exec:    db,
		dialect: d,
		now:     time.Now,
	}

	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrate создает таблицу, если ее нет
func (s *SQLStore) migrate(ctx context.Context) error {
	if _, err := s.exec.ExecContext(ctx, s.dialect.schema); err != nil {
		return fmt.Errorf("%w: %s migrate: %v", ErrExecQuery, s.dialect.name, err)
	}
	return nil
}

// Get возвращает значение по ключу
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	query, args, err := s.dialect.builder.
		Select("value").
		From(tableName).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = s.exec.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: Get - scan value for %s: %v", ErrScanRow, key, err)
	}

	return value, nil
}

// Put создает или заменяет значение
func (s *SQLStore) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}

	query, args, err := s.dialect.builder.
		Insert(tableName).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UnixMilli()).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Put - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Put - upsert %s: %v", ErrExecQuery, key, err)
	}

	return nil
}

// Close закрывает соединение с БД
func (s *SQLStore) Close() error {
	return s.db.Close()
}
