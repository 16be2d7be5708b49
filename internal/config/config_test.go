package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/kv"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	shop := cfg.ShopConfig()
	assert.Equal(t, types.TimeString("09:00"), shop.OpenTime)
	assert.Equal(t, types.TimeString("20:00"), shop.CloseTime)
	assert.Equal(t, 60, shop.SlotMinutes)
	assert.Equal(t, 5, shop.SeatsPerSlot)
	assert.Equal(t, "9961583051", shop.OwnerContact)
	assert.Equal(t, kv.BackendSQLite, cfg.KVConfig().Backend)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
http_port = 9090

[shop]
open_time = "9:30"
close_time = "18:00"
slot_minutes = 30
seats_per_slot = 3
owner_contact = "+91 99615 83051"

[storage]
backend = "memory"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, kv.BackendMemory, cfg.Storage.Backend)

	shop := cfg.ShopConfig()
	assert.Equal(t, types.TimeString("09:30"), shop.OpenTime)
	assert.Equal(t, 30, shop.SlotMinutes)
	assert.Equal(t, 3, shop.SeatsPerSlot)
	assert.Equal(t, "+919961583051", shop.OwnerContact)

	// секции, которых нет в файле, остаются по умолчанию
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 256, cfg.Events.QueueSize)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "Barber Shop", cfg.Shop.Name)
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nhttp_port = "), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TWILIO_ACCOUNT_SID":      "AC123",
		"TWILIO_AUTH_TOKEN":       "secret",
		"TWILIO_WHATSAPP_FROM":    "+14155238886",
		"BOOKING_STORAGE_BACKEND": "redis",
		"REDIS_ADDR":              "redis:6379",
		"REDIS_DB":                "2",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, applyEnv(cfg, lookup))

	assert.Equal(t, ProviderTwilio, cfg.Notifications.Provider)
	assert.Equal(t, "AC123", cfg.TwilioConfig().AccountSID)
	assert.Equal(t, "+91", cfg.TwilioConfig().DefaultCountryCode)

	kvCfg := cfg.KVConfig()
	assert.Equal(t, kv.BackendRedis, kvCfg.Backend)
	assert.Equal(t, "redis:6379", kvCfg.Redis.Addr)
	assert.Equal(t, 2, kvCfg.Redis.DB)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv_BadNumber(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == "DB_PORT" {
			return "five", true
		}
		return "", false
	}
	assert.ErrorIs(t, applyEnv(Default(), lookup), ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"bad open time", func(c *Config) { c.Shop.OpenTime = "nine" }},
		{"close before open", func(c *Config) { c.Shop.CloseTime = "08:00" }},
		{"slot too short", func(c *Config) { c.Shop.SlotMinutes = 1 }},
		{"no seats", func(c *Config) { c.Shop.SeatsPerSlot = 0 }},
		{"unknown timezone", func(c *Config) { c.Shop.Timezone = "Mars/Olympus" }},
		{"twilio without credentials", func(c *Config) { c.Notifications.Provider = ProviderTwilio }},
		{"unknown provider", func(c *Config) { c.Notifications.Provider = "sms" }},
		{"zero rate", func(c *Config) { c.RateLimit.RequestsPerSecond = 0 }},
		{"zero queue", func(c *Config) { c.Events.QueueSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "barber", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=barber sslmode=disable", d.DSN())
}
