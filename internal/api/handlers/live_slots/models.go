package live_slots

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

const messageTypeAvailability = "availability"

// AvailabilityMessage сообщение, которое получают подписчики даты
type AvailabilityMessage struct {
	Type  string      `json:"type"`
	Date  string      `json:"date"`
	Slots []SlotState `json:"slots"`
}

// SlotState занятость слота
type SlotState struct {
	Label      string `json:"label"`
	Booked     int    `json:"booked"`
	Available  int    `json:"available"`
	TotalSeats int    `json:"totalSeats"`
	IsFull     bool   `json:"isFull"`
}

func newAvailabilityMessage(date string, availability []domain.SlotAvailability) *AvailabilityMessage {
	slots := make([]SlotState, len(availability))
	for i, a := range availability {
		slots[i] = SlotState{
			Label:      a.Slot.Label,
			Booked:     a.Booked,
			Available:  a.Available(),
			TotalSeats: a.TotalSeats,
			IsFull:     a.IsFull(),
		}
	}

	return &AvailabilityMessage{
		Type:  messageTypeAvailability,
		Date:  date,
		Slots: slots,
	}
}
