package services

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/auralabs/aura/internal/infrastructure/cloudinary"
	"github.com/auralabs/aura/internal/infrastructure/llm"
	"github.com/auralabs/aura/internal/infrastructure/postgres"
	"github.com/auralabs/aura/internal/infrastructure/redis"
	"github.com/auralabs/aura/internal/services/assistant"
	"github.com/auralabs/aura/internal/services/auth"
	"github.com/auralabs/aura/internal/services/session"
	"github.com/auralabs/aura/internal/services/user"
)

type Services struct {
	postgresService   *postgres.Service
	redisService      *redis.Service
	llmService        *llm.Service
	cloudinaryService *cloudinary.Service
	userRepository    user.Repository
	sessionService    *session.Service
	authService       *auth.Service
	assistantService  *assistant.Service
}

// InitializeServices initializes all required services
func InitializeServices() (*Services, error) {
	log.Info().Msg("Initializing core services")

	// Postgres is required; the user store lives there
	postgresService := postgres.NewService()
	if postgresService == nil {
		return nil, fmt.Errorf("postgres service is required - set DATABASE_URL")
	}

	userRepository, err := user.NewRepository(postgresService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user repository: %w", err)
	}

	// Redis is optional; sessions fall back to the in-memory store
	redisService := redis.NewService()
	sessionService := session.NewService(redisService)

	// Cloudinary is optional; persona updates then accept only image URLs
	cloudinaryService := cloudinary.NewService()

	// The model service is required for command classification
	llmService := llm.NewService()
	if llmService == nil {
		return nil, fmt.Errorf("model service is required - set MODEL_API_KEY")
	}

	classifier, err := assistant.NewClassifier(llmService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize classifier: %w", err)
	}

	authService := auth.NewService(userRepository)
	assistantService := assistant.NewService(classifier, userRepository)

	log.Info().Msg("All services initialized successfully")

	return &Services{
		postgresService:   postgresService,
		redisService:      redisService,
		llmService:        llmService,
		cloudinaryService: cloudinaryService,
		userRepository:    userRepository,
		sessionService:    sessionService,
		authService:       authService,
		assistantService:  assistantService,
	}, nil
}

// GetSessionService returns the session service
func (s *Services) GetSessionService() *session.Service {
	return s.sessionService
}

// GetAuthService returns the auth service
func (s *Services) GetAuthService() *auth.Service {
	return s.authService
}

// GetAssistantService returns the assistant service
func (s *Services) GetAssistantService() *assistant.Service {
	return s.assistantService
}

// GetUserRepository returns the user repository
func (s *Services) GetUserRepository() user.Repository {
	return s.userRepository
}

// GetMediaService returns the Cloudinary service, nil when unconfigured
func (s *Services) GetMediaService() *cloudinary.Service {
	return s.cloudinaryService
}
