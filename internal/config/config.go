package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Shop          ShopConfig          `toml:"shop"`
	Storage       StorageConfig       `toml:"storage"`
	Notifications NotificationsConfig `toml:"notifications"`
	Twilio        TwilioConfig        `toml:"twilio"`
	Jobs          JobsConfig          `toml:"jobs"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
	CORS          CORSConfig          `toml:"cors"`
	Events        EventsConfig        `toml:"events"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// ShopConfig правила бронирования магазина
type ShopConfig struct {
	Name         string `toml:"name"`
	OpenTime     string `toml:"open_time"`
	CloseTime    string `toml:"close_time"`
	SlotMinutes  int    `toml:"slot_minutes"`
	SeatsPerSlot int    `toml:"seats_per_slot"`
	OwnerContact string `toml:"owner_contact"`
	Timezone     string `toml:"timezone"`
}

// StorageConfig выбор хранилища расписания
type StorageConfig struct {
	Backend     string         `toml:"backend"` // memory, file, sqlite, postgres, redis
	Key         string         `toml:"key"`
	SaveTimeout int            `toml:"save_timeout"` // секунды
	FileDir     string         `toml:"file_dir"`
	SQLitePath  string         `toml:"sqlite_path"`
	Database    DatabaseConfig `toml:"database"`
	Redis       RedisConfig    `toml:"redis"`
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig подключение к Redis
type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// NotificationsConfig уведомления в WhatsApp
type NotificationsConfig struct {
	Provider           string `toml:"provider"` // twilio или link
	NotifyCustomer     bool   `toml:"notify_customer"`
	NotifyOwner        bool   `toml:"notify_owner"`
	NotifyCancellation bool   `toml:"notify_cancellation"`
	SendTimeout        int    `toml:"send_timeout"` // секунды
	DefaultCountryCode string `toml:"default_country_code"`
}

// TwilioConfig учетные данные Twilio (обычно задаются через окружение)
type TwilioConfig struct {
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
}

// JobsConfig расписание фоновых задач (cron). Пустая строка выключает задачу
type JobsConfig struct {
	DigestSchedule     string `toml:"digest_schedule"`
	CheckpointSchedule string `toml:"checkpoint_schedule"`
	CleanupSchedule    string `toml:"cleanup_schedule"`
	Timeout            int    `toml:"timeout"` // секунды
}

// RateLimitConfig ограничение частоты создания бронирований
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	IdleTTL           int     `toml:"idle_ttl"` // секунды
}

// CORSConfig разрешенные источники для веб-клиента
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// EventsConfig очередь событий бронирования
type EventsConfig struct {
	QueueSize int `toml:"queue_size"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load читает конфигурацию: значения по умолчанию, затем config.toml, затем .env и окружение
// Отсутствующий config.toml не ошибка
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	open, err := types.NewTimeStringFromString(c.Shop.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: shop.open_time: %v", ErrInvalidConfig, err)
	}
	closing, err := types.NewTimeStringFromString(c.Shop.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: shop.close_time: %v", ErrInvalidConfig, err)
	}
	if closing.Minutes() <= open.Minutes() {
		return fmt.Errorf("%w: shop.close_time %s must be after open_time %s", ErrInvalidConfig, closing, open)
	}
	if c.Shop.SlotMinutes < domain.MinSlotMinutes || c.Shop.SlotMinutes > domain.MaxSlotMinutes {
		return fmt.Errorf("%w: shop.slot_minutes must be between %d and %d",
			ErrInvalidConfig, domain.MinSlotMinutes, domain.MaxSlotMinutes)
	}
	if c.Shop.SeatsPerSlot < domain.MinSeatsPerSlot || c.Shop.SeatsPerSlot > domain.MaxSeatsPerSlot {
		return fmt.Errorf("%w: shop.seats_per_slot must be between %d and %d",
			ErrInvalidConfig, domain.MinSeatsPerSlot, domain.MaxSeatsPerSlot)
	}
	if _, err := time.LoadLocation(c.Shop.Timezone); err != nil {
		return fmt.Errorf("%w: shop.timezone %q: %v", ErrInvalidConfig, c.Shop.Timezone, err)
	}

	switch c.Notifications.Provider {
	case ProviderLink:
	case ProviderTwilio:
		if c.Twilio.AccountSID == "" || c.Twilio.AuthToken == "" || c.Twilio.FromNumber == "" {
			return fmt.Errorf("%w: twilio provider requires account_sid, auth_token and from_number", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: notifications.provider %q", ErrInvalidConfig, c.Notifications.Provider)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	if c.Events.QueueSize <= 0 {
		return fmt.Errorf("%w: events.queue_size must be positive", ErrInvalidConfig)
	}

	return nil
}

// Location возвращает часовой пояс магазина
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Shop.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
