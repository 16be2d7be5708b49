package config

import (
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/kv"
	storageSchedule "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/schedule"
)

// Провайдеры уведомлений
const (
	ProviderTwilio = "twilio"
	ProviderLink   = "link"
)

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     120,
			ShutdownTimeout: 10,
		},
		Shop: ShopConfig{
			Name:         domain.DefaultShopName,
			OpenTime:     domain.DefaultOpenTime,
			CloseTime:    domain.DefaultCloseTime,
			SlotMinutes:  domain.DefaultSlotMinutes,
			SeatsPerSlot: domain.DefaultSeatsPerSlot,
			OwnerContact: domain.DefaultOwnerContact,
			Timezone:     "Local",
		},
		Storage: StorageConfig{
			Backend:     kv.BackendSQLite,
			Key:         storageSchedule.DefaultKey,
			SaveTimeout: 5,
			FileDir:     "data",
			SQLitePath:  "data/bookings.db",
			Database: DatabaseConfig{
				Host:            "localhost",
				Port:            5432,
				User:            "postgres",
				DBName:          "barber_booking",
				SSLMode:         "disable",
				MaxOpenConns:    10,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				KeyPrefix: "barber:",
			},
		},
		Notifications: NotificationsConfig{
			Provider:           ProviderLink,
			NotifyCustomer:     true,
			NotifyOwner:        true,
			NotifyCancellation: true,
			SendTimeout:        10,
			DefaultCountryCode: "+91",
		},
		Jobs: JobsConfig{
			DigestSchedule:     "0 21 * * *",
			CheckpointSchedule: "@every 1m",
			CleanupSchedule:    "@every 10m",
			Timeout:            30,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1,
			Burst:             5,
			IdleTTL:           600,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Events: EventsConfig{
			QueueSize: 256,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "barber_booking",
		},
	}
}
