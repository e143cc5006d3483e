package config

import (
	"os"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string

	// AdminPasscodeHash is a bcrypt hash of the admin passcode. Empty disables
	// the admin gate (local development only).
	AdminPasscodeHash string
	JWTSigningKey     string
	SessionTTL        time.Duration

	Redis       RedisConfig
	PostgresURL string

	GeminiAPIKey string
	Twilio       TwilioConfig
}

// RedisConfig holds connection settings for the record store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// TwilioConfig holds credentials for the SMS collaborator. All three must be
// set for SMS sending to be enabled.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SUMMIT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:              addr,
		AdminPasscodeHash: os.Getenv("ADMIN_PASSCODE_HASH"),
		JWTSigningKey:     jwtSigningKey,
		SessionTTL:        12 * time.Hour,
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		PostgresURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
		},
	}
}

// Enabled reports whether the Twilio collaborator is fully configured.
func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}
