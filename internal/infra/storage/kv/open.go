package kv

import (
	"context"
	"fmt"
	"strings"
)

// Поддерживаемые типы хранилищ
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config выбор и параметры хранилища
type Config struct {
	Backend    string
	FileDir    string
	SQLitePath string
	Postgres   PostgresConfig
	Redis      RedisConfig
}

// Open создает хранилище по конфигурации (по умолчанию SQLite)
func Open(ctx context.Context, cfg Config) (Store, error) {
	var (
		store Store
		err   error
	)

	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case BackendMemory:
		store = NewMemoryStore()
	case BackendFile:
		store, err = NewFileStore(cfg.FileDir)
	case BackendSQLite, "":
		store, err = OpenSQLite(ctx, cfg.SQLitePath)
	case BackendPostgres:
		store, err = OpenPostgres(ctx, cfg.Postgres)
	case BackendRedis:
		store, err = OpenRedis(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}

	if err != nil {
		return nil, err
	}
	return store, nil
}
