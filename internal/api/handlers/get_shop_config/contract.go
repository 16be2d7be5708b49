package get_shop_config

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

type ScheduleReader interface {
	Config() domain.ShopConfig
	Slots() []domain.Slot
}

type Logger interface {
	Info(format string, v ...interface{})
}
