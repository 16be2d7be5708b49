package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisConfig параметры подключения к Redis
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore хранилище поверх Redis строк (GET/SET)
type RedisStore struct {
	client *redis.Client
	prefix string
}

// OpenRedis подключается к Redis и проверяет соединение
func OpenRedis(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: redis ping %s: %v", ErrConnection, cfg.Addr, err)
	}

	return NewRedisStore(client, cfg.KeyPrefix), nil
}

// NewRedisStore оборачивает готовый клиент
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Get возвращает значение по ключу
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: redis GET %s: %v", ErrExecQuery, key, err)
	}
	return value, nil
}

// Put сохраняет значение без срока жизни
func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis SET %s: %v", ErrExecQuery, key, err)
	}
	return nil
}

// Close закрывает клиент
func (s *RedisStore) Close() error {
	return s.client.Close()
}
