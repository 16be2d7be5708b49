package domain

// Default shop configuration
const (
	DefaultShopName     = "Barber Shop"
	DefaultOpenTime     = "09:00"
	DefaultCloseTime    = "20:00"
	DefaultSlotMinutes  = 60
	DefaultSeatsPerSlot = 5
	DefaultOwnerContact = "9961583051"
)

// Business validation constants
const (
	MinSlotMinutes     = 5
	MaxSlotMinutes     = 480 // 8 hours
	MinSeatsPerSlot    = 1
	MaxSeatsPerSlot    = 100
	MinContactLength   = 7 // normalized customer contact
	MinOwnerContactLen = 6
)

// Time format constants
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	SlotLabelFormat = "3:04 PM"    // H:MM AM/PM
)
