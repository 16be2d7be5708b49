package config

import (
	"fmt"
	"strconv"
	"strings"
)

type lookupFunc func(key string) (string, bool)

// applyEnv переопределяет значения из окружения (секреты и адреса подключений)
func applyEnv(cfg *Config, lookup lookupFunc) error {
	strs := map[string]*string{
		"BOOKING_LOG_LEVEL":           &cfg.Logs.Level,
		"BOOKING_LOG_FILE":            &cfg.Logs.File,
		"BOOKING_OWNER_CONTACT":       &cfg.Shop.OwnerContact,
		"BOOKING_TIMEZONE":            &cfg.Shop.Timezone,
		"BOOKING_NOTIFY_PROVIDER":     &cfg.Notifications.Provider,
		"BOOKING_STORAGE_BACKEND":     &cfg.Storage.Backend,
		"BOOKING_STORAGE_KEY":         &cfg.Storage.Key,
		"BOOKING_STORAGE_FILE_DIR":    &cfg.Storage.FileDir,
		"BOOKING_STORAGE_SQLITE_PATH": &cfg.Storage.SQLitePath,
		"TWILIO_ACCOUNT_SID":          &cfg.Twilio.AccountSID,
		"TWILIO_AUTH_TOKEN":           &cfg.Twilio.AuthToken,
		"TWILIO_WHATSAPP_FROM":        &cfg.Twilio.FromNumber,
		"REDIS_ADDR":                  &cfg.Storage.Redis.Addr,
		"REDIS_PASSWORD":              &cfg.Storage.Redis.Password,
		"DB_HOST":                     &cfg.Storage.Database.Host,
		"DB_USER":                     &cfg.Storage.Database.User,
		"DB_PASSWORD":                 &cfg.Storage.Database.Password,
		"DB_NAME":                     &cfg.Storage.Database.DBName,
		"DB_SSLMODE":                  &cfg.Storage.Database.SSLMode,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	ints := map[string]*int{
		"BOOKING_HTTP_PORT": &cfg.Server.HTTPPort,
		"REDIS_DB":          &cfg.Storage.Redis.DB,
		"DB_PORT":           &cfg.Storage.Database.Port,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, v)
		}
		*dst = n
	}

	// Наличие учетных данных Twilio включает отправку через Twilio
	if _, ok := lookup("BOOKING_NOTIFY_PROVIDER"); !ok &&
		cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "" && cfg.Twilio.FromNumber != "" {
		cfg.Notifications.Provider = ProviderTwilio
	}

	return nil
}
