package schedule

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// NormalizeContact оставляет в номере только цифры и ведущий '+'
// "+91 99615-83051" -> "+919961583051"
func NormalizeContact(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripContact оставляет цифры и все '+'. Длина номера проверяется по этой форме
// "123+456+" -> "123+456+"
func stripContact(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validateBooking проверяет имя и контакт клиента
// Порядок проверок фиксирован: сначала имя, потом контакт
func validateBooking(customerName, rawContact string) (name string, contact string, err error) {
	name = strings.TrimSpace(customerName)
	if name == "" {
		return "", "", ErrInvalidName
	}

	if stripped := stripContact(rawContact); len(stripped) < domain.MinContactLength {
		return "", "", fmt.Errorf("%w: need at least %d characters, got %q",
			ErrInvalidContact, domain.MinContactLength, stripped)
	}
	contact = NormalizeContact(rawContact)

	return name, contact, nil
}

// validateConfig проверяет ограничения конфигурации магазина
func validateConfig(cfg domain.ShopConfig) error {
	if cfg.SlotMinutes < domain.MinSlotMinutes || cfg.SlotMinutes > domain.MaxSlotMinutes {
		return fmt.Errorf("%w: slot length must be between %d and %d minutes, got %d",
			ErrInvalidConfig, domain.MinSlotMinutes, domain.MaxSlotMinutes, cfg.SlotMinutes)
	}

	if cfg.SeatsPerSlot < domain.MinSeatsPerSlot || cfg.SeatsPerSlot > domain.MaxSeatsPerSlot {
		return fmt.Errorf("%w: seats per slot must be between %d and %d, got %d",
			ErrInvalidConfig, domain.MinSeatsPerSlot, domain.MaxSeatsPerSlot, cfg.SeatsPerSlot)
	}

	return nil
}
