package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/auralabs/aura/internal/services/user"
)

const minPasswordLength = 6

// Credential failures map to 400 at the boundary, matching the API contract.
var (
	ErrEmailTaken   = errors.New("email already exists")
	ErrWeakPassword = errors.New("password must be at least 6 characters")
	ErrUnknownEmail = errors.New("email does not exist")
	ErrBadPassword  = errors.New("incorrect password")
)

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Signup creates an account with a hashed credential. The email must be
// unused and the password at least six characters.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*user.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("email lookup failed: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: hashed,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", u.ID).Msg("New account created")
	return u, nil
}

// Login verifies the credential and returns the account
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("email lookup failed: %w", err)
	}
	if u == nil {
		return nil, ErrUnknownEmail
	}

	if err := CheckPassword(u.Password, password); err != nil {
		return nil, ErrBadPassword
	}

	return u, nil
}
