package config

// GetPort returns the HTTP listen port
func GetPort() string {
	return GetEnvOrDefault("PORT", "8000")
}

// GetAllowedOrigin returns the browser origin allowed to call the API with
// credentials. Cookie auth requires an explicit origin, not a wildcard.
func GetAllowedOrigin() string {
	return GetEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:5173")
}
