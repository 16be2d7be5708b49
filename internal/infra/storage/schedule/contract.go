package schedule

import "context"

// KVStore хранилище сериализованного расписания
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// MetricsRecorder учет операций с хранилищем
type MetricsRecorder interface {
	RecordPersistence(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
