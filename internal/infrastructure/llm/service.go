package llm

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/auralabs/aura/internal/config"
)

type Service struct {
	mu     sync.RWMutex
	client *openai.Client
	model  string
}

func NewService() *Service {
	log.Info().Msg("Initialising model service")
	key := config.GetModelAPIKey()

	if key == "" {
		log.Warn().Msg("Model service not configured - MODEL_API_KEY missing")
		return nil
	}

	cfg := openai.DefaultConfig(key)
	if base := config.GetModelBaseURL(); base != "" {
		cfg.BaseURL = base
	}

	return &Service{
		mu:     sync.RWMutex{},
		client: openai.NewClientWithConfig(cfg),
		model:  config.GetModelName(),
	}
}

func (s *Service) GetClient() *openai.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

func (s *Service) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}
