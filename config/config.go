// Package config loads runtime configuration from the environment, with a
// .env file picked up when present.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration.
type Config struct {
	// API
	APIPort int

	// Storage
	DatabaseURL string // remote Postgres; empty runs local-only
	DataDir     string // local badger directory

	// Generation
	OpenAIKey         string
	GenerationTimeout time.Duration

	// Events
	NATSURL string // empty disables event publishing

	// Job intervals
	ContentInterval   time.Duration
	LifecycleInterval time.Duration
	SocialInterval    time.Duration
	ChatInterval      time.Duration

	// Start the scheduler immediately instead of waiting for the API call
	AutoStart bool
}

// Load reads configuration. Every field has a default so an empty
// environment still yields a runnable local setup.
func Load() Config {
	godotenv.Load()

	return Config{
		APIPort:           envInt("API_PORT", 8080),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DataDir:           envStr("DATA_DIR", "./data"),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		GenerationTimeout: envDuration("GENERATION_TIMEOUT", 30*time.Second),
		NATSURL:           os.Getenv("NATS_URL"),
		ContentInterval:   envDuration("CONTENT_INTERVAL", time.Hour),
		LifecycleInterval: envDuration("LIFECYCLE_INTERVAL", 6*time.Hour),
		SocialInterval:    envDuration("SOCIAL_INTERVAL", 2*time.Hour),
		ChatInterval:      envDuration("CHAT_INTERVAL", 30*time.Minute),
		AutoStart:         envBool("AUTO_START", true),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
