// Package config loads application configuration from the environment once at
// startup. The resulting Config is immutable and passed by reference; nothing
// reads the environment after Load returns.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Fields map one-to-one to
// environment variables; every value has a literal development fallback so the
// app boots against a local MySQL with no .env file at all.
type Config struct {
	Env  string // application environment ("development" or "production")
	Addr string // HTTP listen address

	DBHost     string // MySQL host
	DBPort     string // MySQL port
	DBUser     string // MySQL user
	DBPassword string // MySQL password
	DBName     string // MySQL database name

	SecretKey string // signing secret for the flash cookie and CSRF tokens

	ResendKey  string // Resend API key; empty disables real email delivery
	ResendFrom string // sender address for receipt emails
	ReplyTo    string // reply-to address for receipt emails
}

// Load reads a .env file if present, then the environment, and returns the
// assembled Config. A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:        envOr("GYMDESK_ENV", "development"),
		Addr:       envOr("GYMDESK_ADDR", ":8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "3306"),
		DBUser:     envOr("DB_USER", "root"),
		DBPassword: envOr("DB_PASSWORD", "password"),
		DBName:     envOr("DB_NAME", "gymdb"),
		SecretKey:  envOr("SECRET_KEY", "dev-secret-key"),
		ResendKey:  os.Getenv("RESEND_API_KEY"),
		ResendFrom: envOr("GYMDESK_RESEND_FROM", "GymDesk <noreply@gymdesk.local>"),
		ReplyTo:    envOr("GYMDESK_REPLY_TO", "frontdesk@gymdesk.local"),
	}
}

// envOr returns the value of the environment variable or the fallback if unset
// or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
