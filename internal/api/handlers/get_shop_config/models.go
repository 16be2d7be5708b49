package get_shop_config

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

// ShopConfigResponse HTTP response model
// Номер владельца не отдается клиентам
type ShopConfigResponse struct {
	Name         string   `json:"name"`
	OpenTime     string   `json:"openTime"`
	CloseTime    string   `json:"closeTime"`
	SlotMinutes  int      `json:"slotMinutes"`
	SeatsPerSlot int      `json:"seatsPerSlot"`
	Slots        []string `json:"slots"`
}

// FromDomain конвертирует конфигурацию магазина в HTTP response
func FromDomain(cfg domain.ShopConfig, slots []domain.Slot) *ShopConfigResponse {
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label
	}

	return &ShopConfigResponse{
		Name:         cfg.Name,
		OpenTime:     cfg.OpenTime.String(),
		CloseTime:    cfg.CloseTime.String(),
		SlotMinutes:  cfg.SlotMinutes,
		SeatsPerSlot: cfg.SeatsPerSlot,
		Slots:        labels,
	}
}
