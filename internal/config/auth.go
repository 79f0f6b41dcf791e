package config

import (
	"sync"
)

var (
	jwtSecretMu sync.RWMutex
	// jwtSecret is resolved lazily so a secret loaded from .env is seen
	jwtSecret []byte
)

// SetJWTSecret temporarily changes the JWT secret and returns a function to restore it
// This is primarily used for testing
func SetJWTSecret(secret []byte) func() {
	jwtSecretMu.Lock()
	previous := jwtSecret
	jwtSecret = secret
	jwtSecretMu.Unlock()

	return func() {
		jwtSecretMu.Lock()
		jwtSecret = previous
		jwtSecretMu.Unlock()
	}
}

// GetJWTSecret returns the current JWT secret in a thread-safe manner
func GetJWTSecret() []byte {
	jwtSecretMu.RLock()
	if jwtSecret != nil {
		defer jwtSecretMu.RUnlock()
		return jwtSecret
	}
	jwtSecretMu.RUnlock()

	jwtSecretMu.Lock()
	defer jwtSecretMu.Unlock()
	if jwtSecret == nil {
		jwtSecret = []byte(GetEnvOrDefault("JWT_SECRET", "dev-only-session-secret"))
	}
	return jwtSecret
}
