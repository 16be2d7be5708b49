package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const fileExtension = ".json"

// FileStore хранит каждое значение в отдельном файле каталога
// Запись атомарна: временный файл + fsync + rename
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore создает хранилище в каталоге dir (каталог создается при необходимости)
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create directory %s: %v", ErrIO, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Get читает значение из файла
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, key, err)
	}
	return data, nil
}

// Put записывает значение через временный файл
func (s *FileStore) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file for %s: %v", ErrIO, key, err)
	}
	tmpName := tmp.Name()

	// 1. Пишем данные во временный файл
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrIO, key, err)
	}

	// 2. Сбрасываем на диск
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync %s: %v", ErrIO, key, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrIO, key, err)
	}

	// 3. Атомарно заменяем старый файл
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", ErrIO, key, err)
	}

	return nil
}

// Close ничего не делает
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+fileExtension)
}
