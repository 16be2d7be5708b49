package schedule

import "errors"

var (
	// ErrPersistenceUnavailable возвращается, когда хранилище недоступно для записи или чтения
	ErrPersistenceUnavailable = errors.New("schedule.repository: persistence unavailable")

	// ErrCorruptPayload возвращается, когда сохраненные данные не удается разобрать
	ErrCorruptPayload = errors.New("schedule.repository: corrupt payload")
)
