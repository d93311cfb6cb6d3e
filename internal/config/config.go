package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port             int
	NatsURL          string
	NatsToken        string
	LogLevel         string
	AnthropicAPIKey  string
	AnthropicModel   string
	APIToken         string
	GeneratorTimeout int // seconds
}

func Load() Config {
	return Config{
		Port:             envInt("HONEYPOT_PORT", 8900),
		NatsURL:          envStr("NATS_URL", ""),
		NatsToken:        envStr("NATS_TOKEN", ""),
		LogLevel:         envStr("LOG_LEVEL", "info"),
		AnthropicAPIKey:  envStr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:   envStr("HONEYPOT_MODEL", "claude-sonnet-4-20250514"),
		APIToken:         envStr("HONEYPOT_API_TOKEN", ""),
		GeneratorTimeout: envInt("GENERATOR_TIMEOUT_SECONDS", 10),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
