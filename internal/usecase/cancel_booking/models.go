package cancel_booking

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64  // ID бронирования
	Date      string // Дата в формате YYYY-MM-DD
	Slot      string // Метка слота
	Confirmed bool   // Явное подтверждение от пользователя
}

// Response модель ответа после отмены
// Отмена несуществующего бронирования тоже успешна
type Response struct {
	BookingID  int64
	Date       string
	Slot       string
	Booked     int // Занято мест в слоте после отмены
	TotalSeats int
}
