package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port      string
	RateLimit int // requests per minute per IP
}

func Load() Config {
	cfg := Config{
		Port:      os.Getenv("VOCAB_SERVICE_PORT"),
		RateLimit: 120,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT")); err == nil && v > 0 {
		cfg.RateLimit = v
	}
	return cfg
}
