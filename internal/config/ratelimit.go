package config

import (
	"time"

	"github.com/rs/zerolog/log"
)

type RateLimitConfig struct {
	Enabled bool
	MaxHits int
	Window  time.Duration
}

func GetRateLimitConfig(key string) RateLimitConfig {
	enabled := GetEnvOrDefault("RATELIMIT_ENABLED", "false") == "true"

	configs := map[string]RateLimitConfig{
		"auth": {
			Enabled: enabled,
			MaxHits: parseEnvInt("RATELIMIT_AUTH", 30), // 30 requests per minute
			Window:  time.Minute,
		},
		"ask": {
			Enabled: enabled,
			MaxHits: parseEnvInt("RATELIMIT_ASK", 60), // 60 commands per minute
			Window:  time.Minute,
		},
	}

	if config, exists := configs[key]; exists {
		return config
	}

	log.Warn().Str("key", key).Msg("No rate limit config found for key")
	return RateLimitConfig{Enabled: false}
}
