package cancel_booking

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("cancel_booking: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrNotConfirmed возвращается, когда отмена не подтверждена
	ErrNotConfirmed = errors.New("cancel_booking: cancellation not confirmed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
