package kv

import "errors"

var (
	// ErrKeyNotFound возвращается, когда значение по ключу отсутствует
	ErrKeyNotFound = errors.New("kv: key not found")

	// ErrInvalidKey возвращается для пустого ключа или ключа с недопустимыми символами
	ErrInvalidKey = errors.New("kv: invalid key")

	// ErrUnsupportedBackend возвращается при неизвестном типе хранилища
	ErrUnsupportedBackend = errors.New("kv: unsupported backend")

	// ErrConnection возвращается, когда не удалось подключиться к хранилищу
	ErrConnection = errors.New("kv: connection failed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kv: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("kv: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("kv: failed to scan row")

	// ErrIO возвращается при ошибке чтения или записи файла
	ErrIO = errors.New("kv: file i/o error")
)
