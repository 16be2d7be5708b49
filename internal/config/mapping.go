package config

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/kv"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-BarberBooking/internal/service/notifications"
	"github.com/m04kA/SMC-BarberBooking/internal/service/schedule"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// ShopConfig конвертирует секцию [shop] в доменную конфигурацию
// Время нормализуется ("9:00" -> "09:00"), номер владельца - как номер клиента
func (c *Config) ShopConfig() domain.ShopConfig {
	open, _ := types.NewTimeStringFromString(c.Shop.OpenTime)
	closing, _ := types.NewTimeStringFromString(c.Shop.CloseTime)

	return domain.ShopConfig{
		Name:         c.Shop.Name,
		OpenTime:     open,
		CloseTime:    closing,
		SlotMinutes:  c.Shop.SlotMinutes,
		SeatsPerSlot: c.Shop.SeatsPerSlot,
		OwnerContact: schedule.NormalizeContact(c.Shop.OwnerContact),
	}
}

// KVConfig параметры хранилища расписания
func (c *Config) KVConfig() kv.Config {
	db := c.Storage.Database
	return kv.Config{
		Backend:    c.Storage.Backend,
		FileDir:    c.Storage.FileDir,
		SQLitePath: c.Storage.SQLitePath,
		Postgres: kv.PostgresConfig{
			DSN:             db.DSN(),
			MaxOpenConns:    db.MaxOpenConns,
			MaxIdleConns:    db.MaxIdleConns,
			ConnMaxLifetime: seconds(db.ConnMaxLifetime),
		},
		Redis: kv.RedisConfig{
			Addr:      c.Storage.Redis.Addr,
			Password:  c.Storage.Redis.Password,
			DB:        c.Storage.Redis.DB,
			KeyPrefix: c.Storage.Redis.KeyPrefix,
		},
	}
}

// NotificationsConfig параметры сервиса уведомлений
func (c *Config) NotificationsConfig() notifications.Config {
	return notifications.Config{
		OwnerContact:       schedule.NormalizeContact(c.Shop.OwnerContact),
		NotifyCustomer:     c.Notifications.NotifyCustomer,
		NotifyOwner:        c.Notifications.NotifyOwner,
		NotifyCancellation: c.Notifications.NotifyCancellation,
		SendTimeout:        seconds(c.Notifications.SendTimeout),
	}
}

// TwilioConfig параметры клиента Twilio
func (c *Config) TwilioConfig() whatsapp.TwilioConfig {
	return whatsapp.TwilioConfig{
		AccountSID:         c.Twilio.AccountSID,
		AuthToken:          c.Twilio.AuthToken,
		FromNumber:         c.Twilio.FromNumber,
		DefaultCountryCode: c.Notifications.DefaultCountryCode,
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
