package cancel_booking

import (
	cancelBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Date    string `json:"date"`
	Slot    string `json:"slot"`
	Confirm bool   `json:"confirm"` // Ответ на "Cancel this booking?"
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID  int64  `json:"bookingId"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	Booked     int    `json:"booked"`
	TotalSeats int    `json:"totalSeats"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(bookingID int64) *cancelBooking.Request {
	return &cancelBooking.Request{
		BookingID: bookingID,
		Date:      r.Date,
		Slot:      r.Slot,
		Confirmed: r.Confirm,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID:  resp.BookingID,
		Date:       resp.Date,
		Slot:       resp.Slot,
		Booked:     resp.Booked,
		TotalSeats: resp.TotalSeats,
	}
}
