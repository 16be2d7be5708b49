package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date     string `json:"date"`     // "2024-06-01"
	Slot     string `json:"slot"`     // "9:00 AM"
	Name     string `json:"name"`     // "Ravi"
	WhatsApp string `json:"whatsapp"` // "+91 99615 83051"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	Name       string `json:"name"`
	WhatsApp   string `json:"whatsapp"`
	CreatedAt  string `json:"createdAt"`
	Booked     int    `json:"booked"`
	TotalSeats int    `json:"totalSeats"`
	Message    string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:     r.Date,
		Slot:     r.Slot,
		Name:     r.Name,
		WhatsApp: r.WhatsApp,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		Date:       resp.Date,
		Slot:       resp.Slot,
		Name:       resp.Name,
		WhatsApp:   resp.WhatsApp,
		CreatedAt:  resp.CreatedAt.UTC().Format(time.RFC3339Nano),
		Booked:     resp.Booked,
		TotalSeats: resp.TotalSeats,
		Message:    "Booked " + resp.Slot,
	}
}
