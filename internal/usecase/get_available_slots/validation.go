package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest проверяет формат даты
func validateRequest(req *Request) error {
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, req.Date)
	}
	return nil
}
