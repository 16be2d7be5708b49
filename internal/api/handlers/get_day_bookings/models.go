package get_day_bookings

import (
	"time"

	getDayBookings "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_day_bookings"
)

// DayBookingsResponse HTTP response model
type DayBookingsResponse struct {
	Date          string         `json:"date"`
	TotalBookings int            `json:"totalBookings"`
	Slots         []SlotBookings `json:"slots"`
}

// SlotBookings бронирования слота
type SlotBookings struct {
	Label      string            `json:"label"`
	Known      bool              `json:"known"`
	Booked     int               `json:"booked"`
	TotalSeats int               `json:"totalSeats"`
	Bookings   []BookingResponse `json:"bookings"`
}

// BookingResponse бронирование клиента
type BookingResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	WhatsApp  string `json:"whatsapp"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayBookings.Response) *DayBookingsResponse {
	slots := make([]SlotBookings, len(resp.Slots))
	for i, slot := range resp.Slots {
		bookings := make([]BookingResponse, len(slot.Bookings))
		for j, b := range slot.Bookings {
			bookings[j] = BookingResponse{
				ID:       b.ID,
				Name:     b.Name,
				WhatsApp: b.WhatsApp,
			}
			if !b.CreatedAt.IsZero() {
				bookings[j].CreatedAt = b.CreatedAt.UTC().Format(time.RFC3339Nano)
			}
		}
		slots[i] = SlotBookings{
			Label:      slot.Label,
			Known:      slot.Known,
			Booked:     slot.Booked,
			TotalSeats: slot.TotalSeats,
			Bookings:   bookings,
		}
	}

	return &DayBookingsResponse{
		Date:          resp.Date,
		TotalBookings: resp.TotalBookings,
		Slots:         slots,
	}
}
