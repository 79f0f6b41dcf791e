package config

// GetModelAPIKey returns the API key for the generative-language endpoint
func GetModelAPIKey() string {
	return GetEnvOrDefault("MODEL_API_KEY", "")
}

// GetModelBaseURL returns an optional override for the generative-language
// endpoint, for OpenAI-compatible gateways. Empty uses the client default.
func GetModelBaseURL() string {
	return GetEnvOrDefault("MODEL_BASE_URL", "")
}

// GetModelName returns the model used for intent classification
func GetModelName() string {
	return GetEnvOrDefault("MODEL_NAME", "gpt-4o-mini")
}
