package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("get_available_slots: invalid date")
)
