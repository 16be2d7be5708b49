package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Date     string // Дата в формате YYYY-MM-DD
	Slot     string // Метка слота ("9:00 AM")
	Name     string // Имя клиента
	WhatsApp string // Номер WhatsApp в свободной форме
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID бронирования
	Date       string    // Дата
	Slot       string    // Метка слота
	Name       string    // Имя клиента (без пробелов по краям)
	WhatsApp   string    // Нормализованный номер
	CreatedAt  time.Time // Время создания (UTC)
	Booked     int       // Занято мест в слоте после бронирования
	TotalSeats int       // Вместимость слота
}
