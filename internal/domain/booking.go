package domain

import "time"

// Booking represents one customer's reservation of a seat in a slot.
// Bookings are immutable once created; the only mutation is removal.
type Booking struct {
	ID        int64
	Name      string // trimmed customer display name
	Contact   string // normalized WhatsApp number: digits and optional leading '+'
	CreatedAt time.Time
}
