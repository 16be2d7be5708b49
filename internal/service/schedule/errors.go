package schedule

import "errors"

var (
	// ErrInvalidName возвращается, когда имя клиента пустое после trim
	ErrInvalidName = errors.New("schedule: customer name is empty")

	// ErrInvalidContact возвращается, когда нормализованный номер короче MinContactLength
	ErrInvalidContact = errors.New("schedule: invalid contact number")

	// ErrSlotFull возвращается, когда в слоте не осталось свободных мест
	ErrSlotFull = errors.New("schedule: slot is full")

	// ErrInvalidConfig возвращается при некорректной конфигурации расписания
	ErrInvalidConfig = errors.New("schedule: invalid configuration")
)
