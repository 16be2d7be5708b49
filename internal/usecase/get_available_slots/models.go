package get_available_slots

import "github.com/m04kA/SMC-BarberBooking/pkg/types"

// Request модель запроса занятости слотов
type Request struct {
	Date string // Дата в формате YYYY-MM-DD; пустая - сегодня
}

// Response модель ответа со слотами дня
type Response struct {
	Date  string // Дата, на которую запрашивались слоты
	Slots []Slot // Все слоты рабочего дня в порядке времени
}

// Slot модель слота с занятостью
type Slot struct {
	Label      string           // Метка слота ("9:00 AM")
	StartTime  types.TimeString // Время начала ("09:00")
	Booked     int              // Количество бронирований
	Available  int              // Свободные места
	TotalSeats int              // Вместимость слота
	IsFull     bool             // Мест нет
}
