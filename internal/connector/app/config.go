package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	DatabaseFile string // Optional: path to SQLite database file (default: ./connector.db)

	ChallengeTTL time.Duration // Optional: how long an issued OTP stays redeemable (default: 5m)
	MaxAttempts  int           // Optional: failed code submissions allowed per challenge (default: 5)

	AdminEmail string // Optional: email of the admin account to seed on startup
	AdminName  string // Optional: display name for the seeded admin (default: Administrator)

	// WhatsApp gateway settings. When GatewayURL is empty the service logs
	// codes instead of sending them, which only makes sense in dev.
	GatewayURL     string
	GatewayAPIKey  string
	GatewayTimeout time.Duration // Optional: per-request delivery timeout (default: 10s)

	// SMTP relay settings. When SMTPAddr is empty mail falls back to the
	// same dev log sink.
	SMTPAddr     string // host:port
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Challenge cleanup interval (default: 15m)
}

func LoadConfig() Config {
	return Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),

		DatabaseFile: getEnvOrDefault("CONNECTOR_DATABASE_FILE", "connector.db"),

		ChallengeTTL: getEnvDurationOrDefault("CONNECTOR_OTP_TTL", 5*time.Minute),
		MaxAttempts:  getEnvIntOrDefault("CONNECTOR_OTP_MAX_ATTEMPTS", 5),

		AdminEmail: os.Getenv("CONNECTOR_ADMIN_EMAIL"),
		AdminName:  getEnvOrDefault("CONNECTOR_ADMIN_NAME", "Administrator"),

		GatewayURL:     os.Getenv("WHATSAPP_GATEWAY_URL"),
		GatewayAPIKey:  os.Getenv("WHATSAPP_GATEWAY_API_KEY"),
		GatewayTimeout: getEnvDurationOrDefault("WHATSAPP_GATEWAY_TIMEOUT", 10*time.Second),

		SMTPAddr:     os.Getenv("SMTP_ADDR"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 15*time.Minute),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are taken as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
