package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateDate проверяет формат даты
func validateDate(date string) error {
	if date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, date)
	}
	return nil
}
