package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is read once from the environment at startup. A .env file is
// loaded by main via godotenv before this runs.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret    string
	JWTTTL       time.Duration
	RefreshTTL   time.Duration
	RefreshPepper string

	UploadDir  string
	StaticBase string

	PaymentGatewaySecret string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                 envOrDefault("PORT", "8080"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTTTL:               durationOrDefault("JWT_TTL", 24*time.Hour),
		RefreshTTL:           durationOrDefault("REFRESH_TTL", 30*24*time.Hour),
		RefreshPepper:        envOrDefault("REFRESH_TOKEN_PEPPER", ""),
		UploadDir:            envOrDefault("UPLOAD_DIR", "./uploads"),
		StaticBase:           envOrDefault("STATIC_URL_BASE", "/static/uploads"),
		PaymentGatewaySecret: os.Getenv("PAYMENT_GATEWAY_SECRET"),
		SMTPHost:             os.Getenv("SMTP_HOST"),
		SMTPPort:             intOrDefault("SMTP_PORT", 587),
		SMTPUser:             os.Getenv("SMTP_USER"),
		SMTPPass:             os.Getenv("SMTP_PASS"),
		SMTPFrom:             envOrDefault("SMTP_FROM", "no-reply@glambook.app"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func intOrDefault(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func durationOrDefault(name string, def time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
