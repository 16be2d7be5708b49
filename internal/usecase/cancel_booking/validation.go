package cancel_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Существование слота не проверяется: в хранилище могут быть метки прежней конфигурации
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Slot) == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, req.Date)
	}

	return nil
}
