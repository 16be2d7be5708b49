package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота с занятостью
type AvailableSlot struct {
	Label      string `json:"label"`
	StartTime  string `json:"startTime"`
	Booked     int    `json:"booked"`
	Available  int    `json:"available"`
	TotalSeats int    `json:"totalSeats"`
	IsFull     bool   `json:"isFull"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Label:      slot.Label,
			StartTime:  slot.StartTime.String(),
			Booked:     slot.Booked,
			Available:  slot.Available,
			TotalSeats: slot.TotalSeats,
			IsFull:     slot.IsFull,
		}
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date,
		Slots: slots,
	}
}
