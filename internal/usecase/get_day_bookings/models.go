package get_day_bookings

import "time"

// Request модель запроса бронирований на дату
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// Response модель ответа для владельца
type Response struct {
	Date          string
	TotalBookings int
	Slots         []SlotBookings
}

// SlotBookings бронирования одного слота
type SlotBookings struct {
	Label      string
	Known      bool // false - метка из хранилища, которой нет в текущей конфигурации
	Booked     int
	TotalSeats int
	Bookings   []Booking
}

// Booking бронирование клиента
type Booking struct {
	ID        int64
	Name      string
	WhatsApp  string
	CreatedAt time.Time
}
