package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	// Database: either a full DSN or individual connection parts.
	MariaDBURL      string
	MariaDBHost     string
	MariaDBPort     int
	MariaDBUser     string
	MariaDBPassword string
	MariaDBDatabase string
	MariaDBSSL      bool
	MariaDBCAPath   string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	AdminEmail   string
	ContactEmail string
	SiteURL      string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		MariaDBURL:      os.Getenv("MARIADB_URL"),
		MariaDBHost:     getEnv("MARIADB_HOST", "127.0.0.1"),
		MariaDBPort:     getEnvInt("MARIADB_PORT", 3306),
		MariaDBUser:     getEnv("MARIADB_USER", "portfolio"),
		MariaDBPassword: getEnv("MARIADB_PASSWORD", "portfolio"),
		MariaDBDatabase: getEnv("MARIADB_DATABASE", "portfolio"),
		MariaDBSSL:      getEnvBool("MARIADB_SSL", false),
		MariaDBCAPath:   os.Getenv("MARIADB_CA_PATH"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnv("JWT_SECRET", "change-me"),
		SMTPHost:        getEnv("SMTP_HOST", "ssl0.ovh.net"),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		ContactEmail:    os.Getenv("CONTACT_EMAIL"),
		SiteURL:         os.Getenv("SITE_URL"),
	}
	// The admin address falls back to the contact address, then to the
	// SMTP account itself.
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.ContactEmail
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.SMTPUser
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
