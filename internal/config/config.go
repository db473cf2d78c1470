package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SMTP holds the mail transport settings. It is filled from the
// environment at startup and injected into the mailer; credentials are
// never hardcoded.
type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type Config struct {
	Port        string
	DatabaseDSN string

	JWTSecret      string
	AccessTokenTTL time.Duration

	// TempDir receives uploads before they are moved into AvatarsDir,
	// which is served publicly under /avatars.
	TempDir    string
	AvatarsDir string

	// BaseURL is the public origin used in verification links.
	BaseURL string

	// RedisAddr enables the login/register rate limiter when set.
	RedisAddr     string
	RedisPassword string

	SMTP SMTP
}

// Load reads .env if present, then the environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:           getenv("PORT", "8080"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: time.Minute * time.Duration(getenvInt("ACCESS_TOKEN_EXPIRES_MIN", 60)),
		TempDir:        getenv("TEMP_DIR", "temp"),
		AvatarsDir:     getenv("AVATARS_DIR", "public/avatars"),
		BaseURL:        getenv("BASE_URL", "http://localhost:8080"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenvInt("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     os.Getenv("FROM_EMAIL"),
		},
	}
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
