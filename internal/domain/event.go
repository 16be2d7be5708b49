package domain

import "time"

// EventType represents the kind of schedule change
type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingCancelled EventType = "booking_cancelled"
)

// BookingEvent is emitted by the schedule store after a committed mutation
type BookingEvent struct {
	Type       EventType
	Date       string
	SlotLabel  string
	Booking    Booking
	Booked     int // bookings in the slot after the mutation
	OccurredAt time.Time
}
