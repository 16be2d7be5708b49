package schedule

import (
	"fmt"
	"iter"
	"slices"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// GenerateSlots возвращает ленивую последовательность слотов рабочего дня
// Слоты идут с openTime с шагом slotMinutes. Слот, который не помещается
// целиком до closeTime, не генерируется
func GenerateSlots(openTime, closeTime types.TimeString, slotMinutes int) (iter.Seq[domain.Slot], error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot length must be positive, got %d", ErrInvalidConfig, slotMinutes)
	}
	if err := openTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: open time: %v", ErrInvalidConfig, err)
	}
	if err := closeTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: close time: %v", ErrInvalidConfig, err)
	}

	open, closing := openTime.Minutes(), closeTime.Minutes()
	if closing <= open {
		return nil, fmt.Errorf("%w: close time %s must be after open time %s", ErrInvalidConfig, closeTime, openTime)
	}

	return func(yield func(domain.Slot) bool) {
		for start := open; start+slotMinutes <= closing; start += slotMinutes {
			// start < closing < MinutesPerDay, ошибка невозможна
			ts, _ := types.NewTimeStringFromMinutes(start)
			if !yield(domain.Slot{Start: ts, Label: ts.Label()}) {
				return
			}
		}
	}, nil
}

// CollectSlots материализует GenerateSlots в слайс
func CollectSlots(openTime, closeTime types.TimeString, slotMinutes int) ([]domain.Slot, error) {
	seq, err := GenerateSlots(openTime, closeTime, slotMinutes)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}
