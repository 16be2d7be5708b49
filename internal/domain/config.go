package domain

import "github.com/m04kA/SMC-BarberBooking/pkg/types"

// ShopConfig represents the shop-wide booking rules.
// Fixed at startup, not editable at runtime.
type ShopConfig struct {
	Name         string
	OpenTime     types.TimeString
	CloseTime    types.TimeString
	SlotMinutes  int
	SeatsPerSlot int
	OwnerContact string // normalized owner WhatsApp number
}

// DefaultShopConfig returns the configuration the shop runs with out of the box
func DefaultShopConfig() ShopConfig {
	return ShopConfig{
		Name:         DefaultShopName,
		OpenTime:     DefaultOpenTime,
		CloseTime:    DefaultCloseTime,
		SlotMinutes:  DefaultSlotMinutes,
		SeatsPerSlot: DefaultSeatsPerSlot,
		OwnerContact: DefaultOwnerContact,
	}
}
