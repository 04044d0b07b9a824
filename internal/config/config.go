package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env         string
	ListenAddr  string
	DatabaseURL string

	ReviewWorkers        int
	ReviewDelay          time.Duration
	AutoApproveThreshold float64
	FullKYBDeadline      time.Duration

	TelegramBotToken  string
	TelegramAdminChat int64
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	cfg := Config{
		Env:                  getenv("APP_ENV", "development"),
		ListenAddr:           getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		ReviewWorkers:        getenvInt("KYB_WORKERS", 1),
		ReviewDelay:          getenvDuration("KYB_REVIEW_DELAY", 5*time.Second),
		AutoApproveThreshold: getenvFloat("KYB_AUTO_APPROVE_THRESHOLD", 0.75),
		FullKYBDeadline:      getenvDuration("KYB_FULL_DEADLINE", 90*24*time.Hour),
		TelegramBotToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAdminChat:    getenvInt64("TELEGRAM_ADMIN_CHAT", 0),
	}
	if cfg.DatabaseURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(v); err == nil {
			return out
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.ParseInt(v, 10, 64); err == nil {
			return out
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.ParseFloat(v, 64); err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if out, err := time.ParseDuration(v); err == nil {
			return out
		}
	}
	return def
}
