package notifications

import (
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// CustomerConfirmation текст подтверждения для клиента
func CustomerConfirmation(event domain.BookingEvent) string {
	return fmt.Sprintf("Hi %s, your booking at %s on %s is confirmed.",
		event.Booking.Name, event.SlotLabel, event.Date)
}

// OwnerAnnouncement текст уведомления владельцу о новой записи
func OwnerAnnouncement(event domain.BookingEvent) string {
	return fmt.Sprintf("New booking: %s, %s, Slot: %s, Date: %s",
		event.Booking.Name, event.Booking.Contact, event.SlotLabel, event.Date)
}

// OwnerCancellation текст уведомления владельцу об отмене
func OwnerCancellation(event domain.BookingEvent) string {
	return fmt.Sprintf("Booking cancelled: %s, %s, Slot: %s, Date: %s",
		event.Booking.Name, event.Booking.Contact, event.SlotLabel, event.Date)
}
