package config

import (
	"github.com/rs/zerolog/log"
)

// GetDatabaseURL returns the Postgres connection string
func GetDatabaseURL() string {
	value := GetEnvOrDefault("DATABASE_URL", "")
	if value == "" {
		log.Warn().Msg("DATABASE_URL environment variable not set")
	}
	return value
}
