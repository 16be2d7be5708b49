package domain

import "github.com/m04kA/SMC-BarberBooking/pkg/types"

// Slot represents a fixed-length window in the shop's operating day.
// Label is the canonical 12-hour start time ("9:00 AM") and is the key into a DaySchedule.
type Slot struct {
	Start types.TimeString
	Label string
}

// SlotAvailability represents the occupancy of a slot on a concrete date
type SlotAvailability struct {
	Slot       Slot
	Booked     int
	TotalSeats int
}

// Available returns the number of free seats (never negative)
func (s SlotAvailability) Available() int {
	if free := s.TotalSeats - s.Booked; free > 0 {
		return free
	}
	return 0
}

// IsFull returns true if the slot has no free seats
func (s SlotAvailability) IsFull() bool {
	return s.Available() == 0
}
