package config

import (
	"github.com/rs/zerolog/log"
)

// GetRedisURL returns the Redis address used for session storage.
// Empty means sessions fall back to the in-memory store.
func GetRedisURL() string {
	value := GetEnvOrDefault("REDIS_URL", "")
	if value == "" {
		log.Debug().Msg("REDIS_URL not set - sessions will use the in-memory store")
	}
	return value
}

// GetRedisPassword returns the Redis password, empty when unauthenticated
func GetRedisPassword() string {
	return GetEnvOrDefault("REDIS_PASSWORD", "")
}
