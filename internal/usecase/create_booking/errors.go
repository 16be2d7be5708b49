package create_booking

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrInvalidSlot возвращается, когда слот не входит в рабочий день магазина
	ErrInvalidSlot = errors.New("create_booking: unknown slot")

	// ErrInvalidName возвращается, когда имя клиента пустое
	ErrInvalidName = errors.New("create_booking: customer name is required")

	// ErrInvalidContact возвращается при некорректном номере WhatsApp
	ErrInvalidContact = errors.New("create_booking: invalid whatsapp number")

	// ErrSlotFull возвращается, когда все места в слоте заняты
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
